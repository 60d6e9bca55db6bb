package author

import (
	"context"
	"errors"
	"testing"
	"time"

	"locallibrary/internal/query"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func sortedAuthors() []Author {
	return []Author{
		{FirstName: "Jane", FamilyName: "Austen", DateOfBirth: date("1775-12-16"), DateOfDeath: date("1817-07-18")},
		{FirstName: "Amitav", FamilyName: "Ghosh", DateOfBirth: date("1835-11-30"), DateOfDeath: date("1910-04-21")},
		{FirstName: "Rabindranath", FamilyName: "Tagore", DateOfBirth: date("1812-02-07"), DateOfDeath: date("1870-06-09")},
	}
}

func TestService_GetAuthorList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, zap.NewNop())

	t.Run("formats in query order", func(t *testing.T) {
		mockRepo.EXPECT().QueryAll(gomock.Any(), query.Asc("family_name")).Return(sortedAuthors(), nil)

		result := service.GetAuthorList(context.Background())

		assert.Equal(t, []string{
			"Austen, Jane : 1775 - 1817",
			"Ghosh, Amitav : 1835 - 1910",
			"Tagore, Rabindranath : 1812 - 1870",
		}, result)
	})

	t.Run("empty name when first name is absent", func(t *testing.T) {
		authors := sortedAuthors()
		authors[0].FirstName = ""
		mockRepo.EXPECT().QueryAll(gomock.Any(), query.Asc("family_name")).Return(authors, nil)

		result := service.GetAuthorList(context.Background())

		assert.Equal(t, []string{
			" : 1775 - 1817",
			"Ghosh, Amitav : 1835 - 1910",
			"Tagore, Rabindranath : 1812 - 1870",
		}, result)
	})

	t.Run("missing death date", func(t *testing.T) {
		mockRepo.EXPECT().QueryAll(gomock.Any(), gomock.Any()).Return([]Author{
			{FirstName: "Olga", FamilyName: "Tokarczuk", DateOfBirth: date("1962-01-29")},
		}, nil)

		assert.Equal(t, []string{"Tokarczuk, Olga : 1962 - "}, service.GetAuthorList(context.Background()))
	})

	t.Run("query error yields empty list", func(t *testing.T) {
		mockRepo.EXPECT().QueryAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		result := service.GetAuthorList(context.Background())

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("no authors", func(t *testing.T) {
		mockRepo.EXPECT().QueryAll(gomock.Any(), gomock.Any()).Return([]Author{}, nil)

		assert.Equal(t, []string{}, service.GetAuthorList(context.Background()))
	})
}

func TestAuthor_Name(t *testing.T) {
	assert.Equal(t, "Austen, Jane", Author{FirstName: "Jane", FamilyName: "Austen"}.Name())
	assert.Equal(t, "", Author{FamilyName: "Austen"}.Name())
	assert.Equal(t, "", Author{FirstName: "Jane"}.Name())
}

func TestAuthor_LifespanUsesUTCYear(t *testing.T) {
	warsaw := time.FixedZone("CET", 3600)
	newYear := time.Date(1800, 1, 1, 0, 30, 0, 0, warsaw)

	birth, death := Author{DateOfBirth: &newYear}.Lifespan()

	assert.Equal(t, "1799", birth)
	assert.Equal(t, "", death)
}
