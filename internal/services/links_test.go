package services_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
	"github.com/workpent/shortlink/internal/services"
	"github.com/workpent/shortlink/internal/services/smocks"
)

// createAttempts должен совпадать с ограничением цикла генерации в сервисе.
const createAttempts = 10

type LinkServiceSuite struct {
	suite.Suite
	repoMock *smocks.LinkRepoMock
	genMock  *smocks.GeneratorMock
	service  *services.LinkService
}

func (s *LinkServiceSuite) SetupTest() {
	s.repoMock = new(smocks.LinkRepoMock)
	s.genMock = new(smocks.GeneratorMock)
	s.service = services.NewLinkService(s.repoMock, s.genMock)
}

func (s *LinkServiceSuite) TestCreate_CustomCode() {
	targetURL := gofakeit.URL()

	s.repoMock.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Link) bool {
		return l.Code == "promo1" && l.TargetURL == targetURL && l.Active
	})).Return(nil)

	link, err := s.service.Create(context.Background(), services.CreateParams{
		TargetURL:  targetURL,
		CustomCode: "promo1",
	})
	s.Require().NoError(err)
	s.Equal("promo1", link.Code)
	s.True(link.Active)

	// Пользовательский код генератор не трогает.
	s.genMock.AssertNotCalled(s.T(), "Generate")
}

func (s *LinkServiceSuite) TestCreate_CustomCodeTaken() {
	s.repoMock.On("Create", mock.Anything, mock.Anything).
		Return(repositories.ErrDuplicateKey)

	_, err := s.service.Create(context.Background(), services.CreateParams{
		TargetURL:  gofakeit.URL(),
		CustomCode: "promo1",
	})
	s.ErrorIs(err, services.ErrCodeTaken)

	// Занятый пользовательский код не перегенерируется: одна попытка и отказ.
	s.repoMock.AssertNumberOfCalls(s.T(), "Create", 1)
}

func (s *LinkServiceSuite) TestCreate_CustomCodeInvalid() {
	_, err := s.service.Create(context.Background(), services.CreateParams{
		TargetURL:  gofakeit.URL(),
		CustomCode: "bad code!",
	})
	s.ErrorIs(err, services.ErrInvalidCode)

	// Невалидный код отклоняется до обращения к хранилищу.
	s.repoMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *LinkServiceSuite) TestCreate_GeneratedRetriesOnConflict() {
	targetURL := gofakeit.URL()

	s.genMock.On("Generate").Return("COLLIDE").Twice()
	s.genMock.On("Generate").Return("fr33c0d").Once()

	s.repoMock.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Link) bool {
		return l.Code == "COLLIDE"
	})).Return(repositories.ErrDuplicateKey)
	s.repoMock.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Link) bool {
		return l.Code == "fr33c0d"
	})).Return(nil)

	link, err := s.service.Create(context.Background(), services.CreateParams{TargetURL: targetURL})
	s.Require().NoError(err)
	s.Equal("fr33c0d", link.Code)
	s.repoMock.AssertNumberOfCalls(s.T(), "Create", 3)
}

func (s *LinkServiceSuite) TestCreate_GeneratedExhausted() {
	s.genMock.On("Generate").Return("COLLIDE")
	s.repoMock.On("Create", mock.Anything, mock.Anything).
		Return(repositories.ErrDuplicateKey)

	_, err := s.service.Create(context.Background(), services.CreateParams{TargetURL: gofakeit.URL()})
	s.ErrorIs(err, services.ErrCodeExhausted)

	// Цикл генерации ограничен десятью попытками.
	s.repoMock.AssertNumberOfCalls(s.T(), "Create", createAttempts)
}

func (s *LinkServiceSuite) TestGetStats() {
	note := "landing page"
	s.repoMock.On("GetByCode", mock.Anything, "promo1").
		Return(&models.Link{Code: "promo1", Active: false, Note: &note}, nil)

	// Статистика отдает запись и для деактивированной ссылки.
	link, err := s.service.GetStats(context.Background(), "promo1")
	s.Require().NoError(err)
	s.False(link.Active)
	s.Equal(&note, link.Note)
}

func (s *LinkServiceSuite) TestGetStats_NotFound() {
	s.repoMock.On("GetByCode", mock.Anything, "nope").
		Return(nil, repositories.ErrNotFound)

	_, err := s.service.GetStats(context.Background(), "nope")
	s.ErrorIs(err, services.ErrRecordNotFound)
}

func (s *LinkServiceSuite) TestList() {
	s.repoMock.On("List", mock.Anything, repositories.Page{Offset: 2, Limit: 10}).
		Return([]models.Link{{Code: "a"}, {Code: "b"}}, int64(42), nil)

	links, total, err := s.service.List(context.Background(), 2, 10)
	s.Require().NoError(err)
	s.Len(links, 2)
	s.Equal(int64(42), total)
}

func (s *LinkServiceSuite) TestDeactivate_NotFound() {
	s.repoMock.On("Deactivate", mock.Anything, "nope").
		Return(nil, repositories.ErrNotFound)

	_, err := s.service.Deactivate(context.Background(), "nope")
	s.ErrorIs(err, services.ErrRecordNotFound)
}

func TestLinkServiceSuite(t *testing.T) {
	suite.Run(t, new(LinkServiceSuite))
}
