package locale

// Messages are the labels of the user interface in one language.
type Messages struct {
	AppName          string
	Version          string
	LangToggle       string
	ExportCSV        string
	Insights         string
	Thinking         string
	Refresh          string
	AnalyzePortfolio string
	InsightHint      string
	ActivityHistory  string
	Records          string
	NoTransactions   string
	AddHint          string
	AvgBuyPrice      string
	Holdings         string
	RealizedPL       string
	MarketValue      string
	UnrealizedPL     string
	MarketPrice      string
	EditRecord       string
	AddRecord        string
	Date             string
	Type             string
	Buy              string
	Sell             string
	Price            string
	Quantity         string
	SaveTransaction  string
	ConfirmDelete    string
	DeleteRecord     string
	ErrorValidInput  string
	ErrorOversell    string
	ErrorNotFound    string
	TotalVolume      string
	AvgPriceAfter    string
	Symbols          string
	Active           string
	Exported         string
	// InsightFallback replaces the insight when it cannot be generated.
	InsightFallback string
}

var messages = map[Language]Messages{
	English: {
		AppName:          "Spot Tracer",
		Version:          "v6",
		LangToggle:       "中文",
		ExportCSV:        "Export CSV",
		Insights:         "Gemini Insights",
		Thinking:         "Thinking...",
		Refresh:          "Refresh",
		AnalyzePortfolio: "Analyze Portfolio",
		InsightHint:      "Run `spt insights` for an AI analysis of your position.",
		ActivityHistory:  "Activity History",
		Records:          "records",
		NoTransactions:   "No transactions yet.",
		AddHint:          "Record one with `spt buy -p <price> -q <quantity>`.",
		AvgBuyPrice:      "Avg. Buy Price",
		Holdings:         "Holdings",
		RealizedPL:       "Realized P/L",
		MarketValue:      "Market Value",
		UnrealizedPL:     "Unrealized P/L",
		MarketPrice:      "Market Price",
		EditRecord:       "Edit Record",
		AddRecord:        "Add Record",
		Date:             "Date",
		Type:             "Type",
		Buy:              "Buy",
		Sell:             "Sell",
		Price:            "Price",
		Quantity:         "Quantity",
		SaveTransaction:  "Save Transaction",
		ConfirmDelete:    "Are you sure you want to delete this record?",
		DeleteRecord:     "Delete Record",
		ErrorValidInput:  "Please enter a valid price and quantity.",
		ErrorOversell:    "You cannot sell more than you hold.",
		ErrorNotFound:    "No record with this id.",
		TotalVolume:      "Total Volume",
		AvgPriceAfter:    "Avg. Price After",
		Symbols:          "Symbols",
		Active:           "active",
		Exported:         "Exported",
		InsightFallback:  "Could not generate insights at this moment.",
	},
	Chinese: {
		AppName:          "现货追踪",
		Version:          "v6",
		LangToggle:       "English",
		ExportCSV:        "导出 CSV",
		Insights:         "Gemini 洞察",
		Thinking:         "思考中...",
		Refresh:          "刷新",
		AnalyzePortfolio: "分析持仓",
		InsightHint:      "运行 `spt insights` 获取 AI 持仓分析。",
		ActivityHistory:  "交易记录",
		Records:          "条记录",
		NoTransactions:   "暂无交易记录。",
		AddHint:          "使用 `spt buy -p <价格> -q <数量>` 添加一条记录。",
		AvgBuyPrice:      "平均买入价",
		Holdings:         "持仓数量",
		RealizedPL:       "已实现盈亏",
		MarketValue:      "市值",
		UnrealizedPL:     "未实现盈亏",
		MarketPrice:      "市场价格",
		EditRecord:       "编辑记录",
		AddRecord:        "添加记录",
		Date:             "日期",
		Type:             "类型",
		Buy:              "买入",
		Sell:             "卖出",
		Price:            "价格",
		Quantity:         "数量",
		SaveTransaction:  "保存交易",
		ConfirmDelete:    "确定要删除这条记录吗？",
		DeleteRecord:     "删除记录",
		ErrorValidInput:  "请输入有效的价格和数量。",
		ErrorOversell:    "卖出数量不能超过持仓数量。",
		ErrorNotFound:    "找不到该记录。",
		TotalVolume:      "成交总额",
		AvgPriceAfter:    "交易后均价",
		Symbols:          "交易品种",
		Active:           "当前",
		Exported:         "已导出",
		InsightFallback:  "暂时无法生成分析报告。",
	},
}

// For returns the messages of a language, English for unknown ones.
func For(l Language) Messages {
	if m, ok := messages[l]; ok {
		return m
	}
	return messages[English]
}
