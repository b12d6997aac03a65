package entity

// BarcodeProfile is the safety-relevant slice of the profile sent with a
// barcode scan.
type BarcodeProfile struct {
	Allergies  []string
	IsPregnant bool
}

// DrugLabel はopenFDAのラベル検索結果1件分です。
// Raw はラベル文書全体のJSONで、アレルゲンの部分一致判定に使用します。
type DrugLabel struct {
	BrandName           string
	GenericName         string
	IndicationsAndUsage string
	Warnings            string
	StopUse             string
	DoNotUse            string
	ActiveIngredients   []string
	HasPregnancyWarning bool
	Raw                 string
}

// DrugMeta はスキャン入力と解釈されたNDCです。
type DrugMeta struct {
	ScannedCode    string `json:"scanned_code"`
	InterpretedNDC string `json:"interpreted_ndc"`
}

// DrugAnalysis は安全性判定の結果です。
type DrugAnalysis struct {
	Status      string   `json:"status"`
	Alerts      []string `json:"alerts"`
	BrandName   string   `json:"brand_name"`
	GenericName string   `json:"generic_name"`
	Usage       string   `json:"usage"`
}

// DrugSafetyInfo はラベルから抜粋した警告文です。
type DrugSafetyInfo struct {
	Warnings string `json:"warnings,omitempty"`
	StopUse  string `json:"stop_use,omitempty"`
	DoNotUse string `json:"do_not_use,omitempty"`
}

// DrugReport はバーコードスキャンの最終レポートです。
type DrugReport struct {
	Meta          DrugMeta       `json:"meta"`
	Analysis      DrugAnalysis   `json:"analysis"`
	RawSafetyInfo DrugSafetyInfo `json:"raw_safety_info"`
}
