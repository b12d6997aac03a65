package openfda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"seeek_backend/internal/feature/scan/domain/entity"
	"seeek_backend/internal/feature/scan/usecase"
	"seeek_backend/internal/shared/ratelimiter"
)

// labelDocument はopenFDAラベル検索結果の1件分です。
// ラベルのテキストフィールドは全て文字列配列で返されます。
type labelDocument struct {
	ActiveIngredient    []string `json:"active_ingredient"`
	IndicationsAndUsage []string `json:"indications_and_usage"`
	Warnings            []string `json:"warnings"`
	StopUse             []string `json:"stop_use"`
	DoNotUse            []string `json:"do_not_use"`
	Pregnancy           []string `json:"pregnancy"`
	TeratogenicEffects  []string `json:"teratogenic_effects"`
	OpenFDA             struct {
		BrandName   []string `json:"brand_name"`
		GenericName []string `json:"generic_name"`
	} `json:"openfda"`
}

// labelResponse はラベル検索エンドポイントのレスポンスです。
type labelResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Results []json.RawMessage `json:"results"`
}

// DrugLabelClient はopenFDAのラベル検索APIからDrugLabelRepositoryを実装します。
type DrugLabelClient struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// DrugLabelClientがDrugLabelRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.DrugLabelRepository = (*DrugLabelClient)(nil)

// NewDrugLabelClient は指定された設定とHTTPクライアントでDrugLabelClientの新しいインスタンスを生成します。
// limiterはAPIキー無し運用時の呼び出し頻度制限に使用します。
func NewDrugLabelClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *DrugLabelClient {
	return &DrugLabelClient{cfg: cfg, client: client, limiter: limiter}
}

// FindByNDC はパッケージNDCまたは製品NDCに一致するラベルを1件返します。
// 一致が無い場合（openFDAのNOT_FOUND）はusecase.ErrDrugNotFoundを返します。
func (d *DrugLabelClient) FindByNDC(ctx context.Context, ndc string) (*entity.DrugLabel, error) {
	if d.limiter != nil {
		d.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	q.Set("search", fmt.Sprintf("openfda.package_ndc:%q OR openfda.product_ndc:%q", ndc, ndc))
	q.Set("limit", "1")
	if d.cfg.APIKey != "" {
		q.Set("api_key", d.cfg.APIKey)
	}
	u := fmt.Sprintf("%s/drug/label.json?%s", d.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openfda request failed: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, usecase.ErrDrugNotFound
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("openfda http %d", res.StatusCode)
	}

	var body labelResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode openfda response: %w", err)
	}
	if body.Error != nil {
		if body.Error.Code == "NOT_FOUND" {
			return nil, usecase.ErrDrugNotFound
		}
		return nil, fmt.Errorf("openfda: %s", body.Error.Message)
	}
	if len(body.Results) == 0 {
		return nil, usecase.ErrDrugNotFound
	}

	raw := body.Results[0]
	var doc labelDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode label document: %w", err)
	}

	return &entity.DrugLabel{
		BrandName:           first(doc.OpenFDA.BrandName),
		GenericName:         first(doc.OpenFDA.GenericName),
		IndicationsAndUsage: first(doc.IndicationsAndUsage),
		Warnings:            first(doc.Warnings),
		StopUse:             first(doc.StopUse),
		DoNotUse:            first(doc.DoNotUse),
		ActiveIngredients:   doc.ActiveIngredient,
		HasPregnancyWarning: len(doc.Pregnancy) > 0 || len(doc.TeratogenicEffects) > 0,
		Raw:                 string(raw),
	}, nil
}

// first は文字列配列の先頭要素を返します。空の場合は空文字列です。
func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
