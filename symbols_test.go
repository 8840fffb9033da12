package spot

import "testing"

func TestCatalog_Lookup(t *testing.T) {
	testCases := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"BTCUSDT", "BTCUSDT", true},
		{"btc", "BTCUSDT", true},
		{"Doge", "DOGEUSDT", true},
		{"AAPL", "AAPLE", true},
		{"aaple", "AAPLE", true},
		{"XRP", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, ok := DefaultCatalog.Lookup(tc.name)
		if ok != tc.wantOK || got.ID != tc.wantID {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tc.name, got.ID, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestCatalog_Default(t *testing.T) {
	if got := DefaultCatalog.Default(); got.ID != "BTCUSDT" {
		t.Errorf("Default() = %q, want BTCUSDT", got.ID)
	}
	if got := (Catalog{}).Default(); got != (Symbol{}) {
		t.Errorf("empty catalog Default() = %v, want the zero symbol", got)
	}
	for _, s := range DefaultCatalog {
		stock := s.Alias == "TSLA" || s.Alias == "NVDA" || s.Alias == "AAPL"
		if s.HasAPI == stock {
			t.Errorf("%s HasAPI = %v", s.ID, s.HasAPI)
		}
	}
}
