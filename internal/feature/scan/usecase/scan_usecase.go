// Package usecase はscanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"seeek_backend/internal/feature/scan/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

var (
	// ErrEmptyImage は画像データが空の場合に返されます。
	ErrEmptyImage = errors.New("image data is empty")
	// ErrImageTooLarge は画像がMaxImageSizeを超える場合に返されます。
	ErrImageTooLarge = errors.New("image size exceeds maximum")
	// ErrEmptyScanData はバーコード入力が空の場合に返されます。
	ErrEmptyScanData = errors.New("no scan data provided")
	// ErrDrugNotFound はNDCに一致する医薬品ラベルが無い場合に返されます。
	ErrDrugNotFound = errors.New("drug not found")
)

// TextExtractor は画像からテキスト（OCR）を抽出するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// LabelAnalyzer は画像とプロフィールから構造化された分析結果を生成するインターフェースです。
type LabelAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType, extractedText string, p entity.Profile) (*entity.ScanResult, error)
}

// DrugLabelRepository はNDCで医薬品ラベルを検索するリポジトリインターフェースです。
type DrugLabelRepository interface {
	// FindByNDC はNDCに一致するラベルを1件返します。
	// 一致が無い場合はErrDrugNotFoundを返します。
	FindByNDC(ctx context.Context, ndc string) (*entity.DrugLabel, error)
}

// scanUsecase は画像スキャン・バーコード照会のビジネスロジックを提供します。
// textExtractorはオプションで、nilの場合はOCR前処理をスキップします。
type scanUsecase struct {
	textExtractor TextExtractor
	labelAnalyzer LabelAnalyzer
	drugLabels    DrugLabelRepository
}

// NewScanUsecase はscanUsecaseの新しいインスタンスを生成します。
func NewScanUsecase(te TextExtractor, la LabelAnalyzer, dl DrugLabelRepository) *scanUsecase {
	return &scanUsecase{textExtractor: te, labelAnalyzer: la, drugLabels: dl}
}

// ImageScan は食品・医薬品の画像を分析し、個別化されたレポートを返します。
// OCRの失敗は分析を止めず、抽出テキスト無しで続行します。
func (u *scanUsecase) ImageScan(ctx context.Context, imageData []byte, mimeType string, p entity.Profile) (*entity.ScanResult, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(imageData))
	}

	var extracted string
	if u.textExtractor != nil {
		text, err := u.textExtractor.ExtractText(ctx, imageData)
		if err != nil {
			slog.Warn("text extraction failed, continuing without OCR", "error", err)
		} else {
			extracted = text
		}
	}

	result, err := u.labelAnalyzer.AnalyzeImage(ctx, imageData, mimeType, extracted, p)
	if err != nil {
		return nil, fmt.Errorf("image analysis failed: %w", err)
	}
	return result, nil
}

// normalizeNDC はバーコードの生データをopenFDAが期待するNDC形式に変換します。
// 12桁のUPC（小売箱のバーコード）の場合、NDCは2〜11桁目に埋め込まれています。
func normalizeNDC(rawScan string) string {
	var b strings.Builder
	for _, r := range rawScan {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if len(cleaned) == 12 {
		return cleaned[1:11]
	}
	return cleaned
}

// AnalyzeBarcode はバーコード（NDC）から医薬品ラベルを照会し、
// アレルギーと妊娠の観点から安全性レポートを組み立てます。
func (u *scanUsecase) AnalyzeBarcode(ctx context.Context, scanData string, p entity.BarcodeProfile) (*entity.DrugReport, error) {
	if scanData == "" {
		return nil, ErrEmptyScanData
	}

	ndc := normalizeNDC(scanData)
	label, err := u.drugLabels.FindByNDC(ctx, ndc)
	if err != nil {
		return nil, err
	}

	status := "Safe to use"
	alerts := []string{}

	// ラベル文書全体に対するアレルゲンの部分一致判定
	content := strings.ToLower(label.Raw)
	for _, allergy := range p.Allergies {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a == "" {
			continue
		}
		if strings.Contains(content, a) {
			status = "High Risk"
			alerts = append(alerts, fmt.Sprintf("ALLERGY WARNING: This product contains or is related to %s.", strings.ToUpper(a)))
		}
	}

	if p.IsPregnant && label.HasPregnancyWarning {
		alerts = append(alerts, "PREGNANCY WARNING: Consult a doctor before use.")
	}

	brand := label.BrandName
	if brand == "" {
		brand = "Unknown"
	}
	generic := label.GenericName
	if generic == "" {
		generic = "Unknown"
	}
	usage := label.IndicationsAndUsage
	if usage == "" {
		usage = "No usage data found."
	}

	return &entity.DrugReport{
		Meta: entity.DrugMeta{
			ScannedCode:    scanData,
			InterpretedNDC: ndc,
		},
		Analysis: entity.DrugAnalysis{
			Status:      status,
			Alerts:      alerts,
			BrandName:   brand,
			GenericName: generic,
			Usage:       usage,
		},
		RawSafetyInfo: entity.DrugSafetyInfo{
			Warnings: label.Warnings,
			StopUse:  label.StopUse,
			DoNotUse: label.DoNotUse,
		},
	}, nil
}
