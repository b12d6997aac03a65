// Package handler はscanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/api"
	authentity "seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/scan/domain/entity"
	"seeek_backend/internal/feature/scan/transport/http/dto"
	"seeek_backend/internal/feature/scan/usecase"
	jwtmw "seeek_backend/internal/platform/jwt"
)

// ScanUsecase は画像スキャン・バーコード照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ScanUsecase interface {
	ImageScan(ctx context.Context, imageData []byte, mimeType string, p entity.Profile) (*entity.ScanResult, error)
	AnalyzeBarcode(ctx context.Context, scanData string, p entity.BarcodeProfile) (*entity.DrugReport, error)
}

// ScanHandler は画像スキャン・バーコード照会のHTTPリクエストを処理します。
type ScanHandler struct {
	uc ScanUsecase
}

// NewScanHandler はScanHandlerの新しいインスタンスを生成します。
func NewScanHandler(uc ScanUsecase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// profileFrom は認証済みユーザーからパーソナライズ用プロフィールを組み立てます。
func profileFrom(user *authentity.User) entity.Profile {
	p := entity.Profile{
		Allergies: user.Allergies,
		UserGoals: user.UserGoals,
	}
	if user.Nationality != nil {
		p.Nationality = *user.Nationality
	}
	if user.DietType != nil {
		p.DietType = *user.DietType
	}
	return p
}

// ImageScan は食品・医薬品の画像を分析し、個別化されたレポートを返します。
//
// エンドポイント: POST /api/v1/imageScan（要認証）
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *ScanHandler) ImageScan(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No image file provided."})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read image."})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read image."})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result, err := h.uc.ImageScan(c.Request.Context(), imageData, mimeType, profileFrom(user))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyImage) || errors.Is(err, usecase.ErrImageTooLarge) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No image file provided."})
			return
		}
		slog.Error("health analysis failed", "email", user.Email, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Analysis failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": result})
}

// AnalyzeBarcode はバーコード（NDC）から医薬品の安全性レポートを返します。
//
// エンドポイント: POST /api/v1/analyzeQrCode（要認証）
func (h *ScanHandler) AnalyzeBarcode(c *gin.Context) {
	var req dto.BarcodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No scan data provided"})
		return
	}

	var profile entity.BarcodeProfile
	if req.UserProfile != nil {
		profile = entity.BarcodeProfile{
			Allergies:  req.UserProfile.Allergies,
			IsPregnant: req.UserProfile.IsPregnant,
		}
	}

	report, err := h.uc.AnalyzeBarcode(c.Request.Context(), req.ScanData, profile)
	if err != nil {
		if errors.Is(err, usecase.ErrDrugNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Drug not found",
				"tip":   "If this is a retail box, try entering the NDC number found near the barcode manually (e.g. 12345-678-90).",
			})
			return
		}
		slog.Error("barcode analysis failed", "scan_data", req.ScanData, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "FDA API Connection Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"meta":            report.Meta,
		"analysis":        report.Analysis,
		"raw_safety_info": report.RawSafetyInfo,
	})
}
