package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// jget evaluates a jsonpath expression on a decoded JSON value and returns
// its first answer.
func jget(path string, jobj any) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	// jsonpath may answer a list of one, or the answer itself
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("no value at %q", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}
