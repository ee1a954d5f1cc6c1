package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pawtrip/internal/models/db_models"
	"pawtrip/internal/models/request_models"
	"pawtrip/pkg/aiclient"
	"pawtrip/pkg/utils"
)

type tripFixture struct {
	gen   *mockGenerator
	pets  *mockPetService
	diary *mockDiaryRepo
	svc   TripContentServiceInterface
}

func newTripFixture() *tripFixture {
	f := &tripFixture{
		gen:   new(mockGenerator),
		pets:  new(mockPetService),
		diary: new(mockDiaryRepo),
	}
	f.svc = NewTripContentService(f.gen, f.pets, f.diary, zap.NewNop())
	return f
}

var (
	testUserID = uuid.New().String()
	dogPet     = request_models.PetInfo{Type: request_models.PetTypeDog, Name: "豆豆", NameEn: "Bean"}
)

func contentRequest(pet *request_models.PetInfo) request_models.ContentRequest {
	return request_models.ContentRequest{
		Activity: sampleActivity,
		Pet:      pet,
		CityName: "Hangzhou",
		Locale:   "en-US",
	}
}

func TestGenerateImage_UsesRequestPet(t *testing.T) {
	f := newTripFixture()
	prompt := BuildImagePrompt(sampleActivity, dogPet, request_models.LocaleEn)
	f.gen.On("GenerateImage", mock.Anything, prompt, "tok").Return("https://x.com/a.jpg", nil)

	resp, err := f.svc.GenerateImage(context.Background(), testUserID, contentRequest(&dogPet), "tok")

	require.NoError(t, err)
	assert.Equal(t, "https://x.com/a.jpg", resp.ImageURL)
	f.gen.AssertExpectations(t)
	f.pets.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestGenerateStory_LoadsStoredPet(t *testing.T) {
	f := newTripFixture()
	f.pets.On("Load", mock.Anything, testUserID).Return(dogPet, nil)
	prompt := BuildStoryPrompt(sampleActivity, dogPet, "Hangzhou", request_models.LocaleEn)
	f.gen.On("GenerateStory", mock.Anything, prompt, "tok").Return("Woof, the lake!", nil)

	resp, err := f.svc.GenerateStory(context.Background(), testUserID, contentRequest(nil), "tok")

	require.NoError(t, err)
	assert.Equal(t, "Woof, the lake!", resp.Story)
	f.gen.AssertExpectations(t)
}

func TestGenerateStory_FallsBackWhenProfileUnavailable(t *testing.T) {
	f := newTripFixture()
	f.pets.On("Load", mock.Anything, testUserID).Return(request_models.PetInfo{}, utils.ErrDatabaseError)
	generic := request_models.PetInfo{Type: request_models.PetTypeOther}
	prompt := BuildStoryPrompt(sampleActivity, generic, "Hangzhou", request_models.LocaleEn)
	f.gen.On("GenerateStory", mock.Anything, prompt, "tok").Return("hello", nil)

	_, err := f.svc.GenerateStory(context.Background(), testUserID, contentRequest(nil), "tok")
	require.NoError(t, err)
}

func TestGenerateImage_RejectsMissingLocation(t *testing.T) {
	f := newTripFixture()
	req := contentRequest(&dogPet)
	req.Activity.Location = " "

	_, err := f.svc.GenerateImage(context.Background(), testUserID, req, "tok")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	f.gen.AssertNotCalled(t, "GenerateImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateTripContent_RejectsOversizedActivityID(t *testing.T) {
	f := newTripFixture()
	req := contentRequest(&dogPet)
	req.Activity.ID = strings.Repeat("x", maxActivityIDLen+1)

	_, err := f.svc.GenerateTripContent(context.Background(), testUserID, req, "tok")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	f.gen.AssertNotCalled(t, "GenerateImage", mock.Anything, mock.Anything, mock.Anything)
	f.diary.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	req.Activity.ID = strings.Repeat("x", maxActivityIDLen)
	f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").Return("https://x.com/a.jpg", nil)
	f.gen.On("GenerateStory", mock.Anything, mock.Anything, "tok").Return("ok", nil)
	f.diary.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err = f.svc.GenerateTripContent(context.Background(), testUserID, req, "tok")
	assert.NoError(t, err)
}

func TestGenerateImage_PropagatesTypedErrors(t *testing.T) {
	f := newTripFixture()
	genErr := &aiclient.GenerationError{Modality: aiclient.ModalityImage, Message: "quota exceeded"}
	f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").Return("", genErr)

	_, err := f.svc.GenerateImage(context.Background(), testUserID, contentRequest(&dogPet), "tok")

	var got *aiclient.GenerationError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "quota exceeded", got.Message)
}

func TestGenerateTripContent_BothSucceed(t *testing.T) {
	f := newTripFixture()
	f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").Return("https://x.com/a.jpg", nil)
	f.gen.On("GenerateStory", mock.Anything, mock.Anything, "tok").Return("A sunny day by the lake.", nil)

	entryID := uuid.New()
	f.diary.On("Create", mock.Anything, mock.MatchedBy(func(e *db_models.DiaryEntry) bool {
		return e.AccountID.String() == testUserID &&
			e.ActivityID == "a1" &&
			e.Location == "West Lake" &&
			e.Locale == "en" &&
			e.ImageURL == "https://x.com/a.jpg" &&
			e.Story == "A sunny day by the lake."
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*db_models.DiaryEntry).ID = entryID
	}).Return(nil)

	resp, err := f.svc.GenerateTripContent(context.Background(), testUserID, contentRequest(&dogPet), "tok")

	require.NoError(t, err)
	assert.Equal(t, entryID.String(), resp.DiaryID)
	assert.Equal(t, "https://x.com/a.jpg", resp.ImageURL)
	assert.Equal(t, "A sunny day by the lake.", resp.Story)
	assert.Empty(t, resp.ImageError)
	assert.Empty(t, resp.StoryError)
	f.diary.AssertExpectations(t)
}

func TestGenerateTripContent_PartialFailureKeepsOtherHalf(t *testing.T) {
	f := newTripFixture()
	f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").
		Return("", &aiclient.GenerationError{Modality: aiclient.ModalityImage, Message: "quota exceeded"})
	f.gen.On("GenerateStory", mock.Anything, mock.Anything, "tok").Return("Still had fun.", nil)
	f.diary.On("Create", mock.Anything, mock.MatchedBy(func(e *db_models.DiaryEntry) bool {
		return e.ImageURL == "" && e.Story == "Still had fun."
	})).Return(nil)

	resp, err := f.svc.GenerateTripContent(context.Background(), testUserID, contentRequest(&dogPet), "tok")

	require.NoError(t, err)
	assert.Empty(t, resp.ImageURL)
	assert.Equal(t, "quota exceeded", resp.ImageError)
	assert.Equal(t, "Still had fun.", resp.Story)
	assert.Empty(t, resp.StoryError)
	f.diary.AssertExpectations(t)
}

func TestGenerateTripContent_BothFail(t *testing.T) {
	imageFail := &aiclient.GenerationError{Modality: aiclient.ModalityImage, Message: "quota exceeded"}
	storyFail := &aiclient.ExtractionError{Modality: aiclient.ModalityStory, Reason: "no text"}
	unauthorized := fmt.Errorf("story: %w", aiclient.ErrUnauthorized)

	t.Run("unauthorized wins", func(t *testing.T) {
		f := newTripFixture()
		f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").Return("", imageFail)
		f.gen.On("GenerateStory", mock.Anything, mock.Anything, "tok").Return("", unauthorized)

		_, err := f.svc.GenerateTripContent(context.Background(), testUserID, contentRequest(&dogPet), "tok")

		assert.ErrorIs(t, err, aiclient.ErrUnauthorized)
		f.diary.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("both reasons kept", func(t *testing.T) {
		f := newTripFixture()
		f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").Return("", imageFail)
		f.gen.On("GenerateStory", mock.Anything, mock.Anything, "tok").Return("", storyFail)

		_, err := f.svc.GenerateTripContent(context.Background(), testUserID, contentRequest(&dogPet), "tok")

		assert.ErrorIs(t, err, aiclient.ErrGenerationFailed)
		assert.ErrorIs(t, err, aiclient.ErrExtractionFailed)
		assert.False(t, errors.Is(err, aiclient.ErrUnauthorized))
		f.diary.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGenerateTripContent_DiaryFailureStillReturnsContent(t *testing.T) {
	f := newTripFixture()
	f.gen.On("GenerateImage", mock.Anything, mock.Anything, "tok").Return("https://x.com/a.jpg", nil)
	f.gen.On("GenerateStory", mock.Anything, mock.Anything, "tok").Return("ok", nil)
	f.diary.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	resp, err := f.svc.GenerateTripContent(context.Background(), testUserID, contentRequest(&dogPet), "tok")

	require.NoError(t, err)
	assert.Empty(t, resp.DiaryID)
	assert.Equal(t, "https://x.com/a.jpg", resp.ImageURL)
}

func TestParsePlan(t *testing.T) {
	f := newTripFixture()

	ok := f.svc.ParsePlan([]byte(wellFormedPlan))
	assert.True(t, ok.Plan.Success)
	require.NotNil(t, ok.Display)
	assert.Equal(t, 3, ok.Display.ActivityCount)

	bad := f.svc.ParsePlan([]byte(`{"planInfo":{"city":"x"}}`))
	assert.False(t, bad.Plan.Success)
	assert.Nil(t, bad.Display)
}

func TestListDiary(t *testing.T) {
	f := newTripFixture()
	accountID := uuid.MustParse(testUserID)
	entries := []db_models.DiaryEntry{
		{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 1_700_000_000}, ActivityID: "a2", Story: "later"},
		{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 1_699_999_000}, ActivityID: "a1", ImageURL: "https://x.com/a.jpg"},
	}
	f.diary.On("ListByAccount", mock.Anything, accountID, 1, 20).Return(entries, nil)

	got, err := f.svc.ListDiary(context.Background(), testUserID, 1, 20)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].ActivityID)
	assert.Equal(t, "2023-11-15T06:13:20+08:00", got[0].CreatedAt)
	assert.Equal(t, "https://x.com/a.jpg", got[1].ImageURL)
}

func TestListDiary_Validation(t *testing.T) {
	f := newTripFixture()

	_, err := f.svc.ListDiary(context.Background(), testUserID, 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = f.svc.ListDiary(context.Background(), testUserID, 1, 500)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	f.diary.On("ListByAccount", mock.Anything, mock.Anything, 2, 10).Return(nil, errors.New("boom"))
	_, err = f.svc.ListDiary(context.Background(), testUserID, 2, 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
