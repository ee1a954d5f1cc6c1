package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pawtrip/internal/models/db_models"
	"pawtrip/internal/models/request_models"
	"pawtrip/internal/models/response_models"
	"pawtrip/internal/repositories"
	"pawtrip/pkg/aiclient"
	"pawtrip/pkg/utils"
)

// maxActivityIDLen matches the diary_entries.activity_id column.
const maxActivityIDLen = 64

type TripContentServiceInterface interface {
	GenerateImage(ctx context.Context, userID string, req request_models.ContentRequest, credential string) (*response_models.ImageResponse, error)
	GenerateStory(ctx context.Context, userID string, req request_models.ContentRequest, credential string) (*response_models.StoryResponse, error)
	GenerateTripContent(ctx context.Context, userID string, req request_models.ContentRequest, credential string) (*response_models.TripContentResponse, error)
	ParsePlan(raw []byte) response_models.PlanResponse
	ListDiary(ctx context.Context, userID string, page, pageSize int) ([]response_models.DiaryEntryResponse, error)
}

type TripContentService struct {
	generator  aiclient.Generator
	petService PetServiceInterface
	diaryRepo  repositories.DiaryRepository
	log        *zap.Logger
}

func NewTripContentService(
	generator aiclient.Generator,
	petService PetServiceInterface,
	diaryRepo repositories.DiaryRepository,
	log *zap.Logger,
) TripContentServiceInterface {
	return &TripContentService{
		generator:  generator,
		petService: petService,
		diaryRepo:  diaryRepo,
		log:        log.Named("trip_content"),
	}
}

// contentInput is a validated ContentRequest with the pet resolved.
type contentInput struct {
	activity response_models.Activity
	pet      request_models.PetInfo
	city     string
	locale   request_models.Locale
}

func (s *TripContentService) resolve(ctx context.Context, userID string, req request_models.ContentRequest) (contentInput, error) {
	if strings.TrimSpace(req.Activity.Location) == "" {
		return contentInput{}, fmt.Errorf("%w: activity.location is required", utils.ErrInvalidInput)
	}
	if len(req.Activity.ID) > maxActivityIDLen {
		return contentInput{}, fmt.Errorf("%w: activity.id must be at most %d bytes", utils.ErrInvalidInput, maxActivityIDLen)
	}

	in := contentInput{
		activity: req.Activity,
		city:     strings.TrimSpace(req.CityName),
		locale:   request_models.ParseLocale(req.Locale),
	}

	if req.Pet != nil {
		petType, _ := request_models.ParsePetType(string(req.Pet.Type))
		in.pet = request_models.PetInfo{Type: petType, Name: req.Pet.Name, NameEn: req.Pet.NameEn}
		return in, nil
	}

	pet, err := s.petService.Load(ctx, userID)
	if err != nil {
		// The profile only flavours the prompt; fall back to a generic pet.
		s.log.Warn("pet profile unavailable, using default", zap.String("user_id", userID), zap.Error(err))
		pet = request_models.PetInfo{Type: request_models.PetTypeOther}
	}
	in.pet = pet
	return in, nil
}

func (s *TripContentService) GenerateImage(ctx context.Context, userID string, req request_models.ContentRequest, credential string) (*response_models.ImageResponse, error) {
	in, err := s.resolve(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	url, err := s.generator.GenerateImage(ctx, BuildImagePrompt(in.activity, in.pet, in.locale), credential)
	if err != nil {
		s.log.Warn("image generation failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &response_models.ImageResponse{ImageURL: url}, nil
}

func (s *TripContentService) GenerateStory(ctx context.Context, userID string, req request_models.ContentRequest, credential string) (*response_models.StoryResponse, error) {
	in, err := s.resolve(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	story, err := s.generator.GenerateStory(ctx, BuildStoryPrompt(in.activity, in.pet, in.city, in.locale), credential)
	if err != nil {
		s.log.Warn("story generation failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &response_models.StoryResponse{Story: story}, nil
}

// GenerateTripContent requests the image and the story concurrently and
// waits for both. The halves succeed or fail independently; the call fails
// only when both do, and an unauthorized half takes precedence so the
// client can ask the user to log in again. Any success is kept in the
// user's diary.
func (s *TripContentService) GenerateTripContent(ctx context.Context, userID string, req request_models.ContentRequest, credential string) (*response_models.TripContentResponse, error) {
	in, err := s.resolve(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	imagePrompt := BuildImagePrompt(in.activity, in.pet, in.locale)
	storyPrompt := BuildStoryPrompt(in.activity, in.pet, in.city, in.locale)

	var (
		wg                 sync.WaitGroup
		imageURL, story    string
		imageErr, storyErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		imageURL, imageErr = s.generator.GenerateImage(ctx, imagePrompt, credential)
	}()
	go func() {
		defer wg.Done()
		story, storyErr = s.generator.GenerateStory(ctx, storyPrompt, credential)
	}()
	wg.Wait()

	log := s.log.With(zap.String("user_id", userID), zap.String("activity_id", in.activity.ID))

	if imageErr != nil && storyErr != nil {
		log.Warn("trip content generation failed", zap.NamedError("image_error", imageErr), zap.NamedError("story_error", storyErr))
		switch {
		case errors.Is(imageErr, aiclient.ErrUnauthorized):
			return nil, imageErr
		case errors.Is(storyErr, aiclient.ErrUnauthorized):
			return nil, storyErr
		}
		return nil, errors.Join(imageErr, storyErr)
	}

	resp := &response_models.TripContentResponse{
		ImageURL: imageURL,
		Story:    story,
	}
	if imageErr != nil {
		log.Warn("image half failed", zap.Error(imageErr))
		resp.ImageError = userMessage(imageErr)
	}
	if storyErr != nil {
		log.Warn("story half failed", zap.Error(storyErr))
		resp.StoryError = userMessage(storyErr)
	}

	accountID, err := uuid.Parse(userID)
	if err != nil {
		log.Warn("skipping diary entry for malformed user id")
		return resp, nil
	}
	entry := &db_models.DiaryEntry{
		AccountID:  accountID,
		ActivityID: in.activity.ID,
		City:       in.city,
		Location:   localizedLocation(in.activity, in.locale),
		Locale:     string(in.locale),
		ImageURL:   imageURL,
		Story:      story,
	}
	if err := s.diaryRepo.Create(ctx, entry); err != nil {
		// Generated content is still returned; only the diary copy is lost.
		log.Error("failed to save diary entry", zap.Error(err))
		return resp, nil
	}
	resp.DiaryID = entry.ID.String()

	return resp, nil
}

func (s *TripContentService) ParsePlan(raw []byte) response_models.PlanResponse {
	parsed := ParseTripPlan(raw)
	if !parsed.Success {
		s.log.Debug("trip plan rejected", zap.String("reason", parsed.Error))
	}
	return response_models.PlanResponse{
		Plan:    parsed,
		Display: FormatForDisplay(parsed),
	}
}

func (s *TripContentService) ListDiary(ctx context.Context, userID string, page, pageSize int) ([]response_models.DiaryEntryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", utils.ErrInvalidInput)
	}

	entries, err := s.diaryRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		s.log.Error("failed to list diary", zap.String("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DiaryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.DiaryEntryResponse{
			ID:         e.ID.String(),
			ActivityID: e.ActivityID,
			City:       e.City,
			Location:   e.Location,
			Locale:     e.Locale,
			ImageURL:   e.ImageURL,
			Story:      e.Story,
			CreatedAt:  utils.FormatRFC3339(utils.FromUnixSeconds(e.CreatedAt)),
		})
	}
	return out, nil
}

// userMessage is the text shown for a failed half of a trip-content call.
func userMessage(err error) string {
	var genErr *aiclient.GenerationError
	switch {
	case errors.Is(err, aiclient.ErrUnauthorized):
		return "Please log in again"
	case errors.As(err, &genErr):
		return genErr.Message
	case errors.Is(err, aiclient.ErrExtractionFailed):
		return "Generated content could not be read"
	default:
		return "Generation failed"
	}
}
