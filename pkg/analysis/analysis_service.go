package analysis

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/activity"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

type (
	AnalysisService interface {
		AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest, userID string) (domain.FoodAnalysisResult, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		activityRepository activity.ActivityRepository
		classifier         Classifier
		s3                 storage.AwsS3
	}
)

func NewAnalysisService(analysisRepository AnalysisRepository, activityRepository activity.ActivityRepository, classifier Classifier, s3 storage.AwsS3) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		activityRepository: activityRepository,
		classifier:         classifier,
		s3:                 s3,
	}
}

func (s *analysisService) AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest, userID string) (domain.FoodAnalysisResult, error) {
	if req.ImageData == "" {
		return domain.FoodAnalysisResult{}, domain.ErrNoImageData
	}

	image, err := base64.StdEncoding.DecodeString(dataURIPrefix.ReplaceAllString(req.ImageData, ""))
	if err != nil {
		return domain.FoodAnalysisResult{}, domain.ErrInvalidImageData
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodAnalysisResult{}, domain.ErrParseUUID
	}

	// A classifier failure is surfaced to the caller and leaves no state
	// behind; everything after this point is best-effort.
	label, confidence, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return domain.FoodAnalysisResult{}, err
	}

	result := AnalyzeFoodProperties(label, confidence)

	analysisID := uuid.New()
	imageURL := s.uploadImage(analysisID, image)

	if err := s.analysisRepository.SaveAnalysis(ctx, &entities.FoodAnalysis{
		ID:                  analysisID,
		UserID:              userUUID,
		FoodName:            result.FoodName,
		Category:            result.Category,
		Freshness:           result.Freshness,
		EstimatedExpiry:     result.EstimatedExpiry,
		NutritionalValue:    result.NutritionalValue,
		DonationSuitability: result.DonationSuitability,
		Confidence:          result.Confidence,
		RawLabel:            label,
		ImageURL:            imageURL,
	}); err != nil {
		log.Printf("failed to save food analysis: %v", err)
	}

	s.recordScanActivity(ctx, userUUID, analysisID, result.FoodName, confidence)

	return result, nil
}

func (s *analysisService) uploadImage(analysisID uuid.UUID, image []byte) string {
	objectKey, err := s.s3.UploadBytes(
		fmt.Sprintf("analysis-%s", analysisID.String()),
		image,
		"food-analysis",
	)
	if err != nil {
		log.Printf("failed to upload analysis image: %v", err)
		return ""
	}
	return s.s3.GetPublicLinkKey(objectKey)
}

func (s *analysisService) recordScanActivity(ctx context.Context, userID, analysisID uuid.UUID, foodName string, confidence int) {
	err := s.activityRepository.AddActivity(ctx, &entities.UserActivity{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: "food_scanned",
		Description:  fmt.Sprintf("Scanned %s with %d%% confidence", foodName, confidence),
		RelatedID:    &analysisID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		log.Printf("failed to record food_scanned activity: %v", err)
	}
}
