package sql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/workpent/shortlink/internal/db"
	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
)

type LinkRepoSuite struct {
	suite.Suite
	repo *LinkRepo
}

func (s *LinkRepoSuite) SetupTest() {
	conn, err := db.NewSQLite(":memory:")
	s.Require().NoError(err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	s.repo = NewLinkRepo(conn, logger)
}

func (s *LinkRepoSuite) createLink(code string) *models.Link {
	link := models.Link{
		Code:      code,
		TargetURL: gofakeit.URL(),
		Active:    true,
	}
	s.Require().NoError(s.repo.Create(context.Background(), &link))
	return &link
}

func (s *LinkRepoSuite) TestCreate_DuplicateCode() {
	s.createLink("promo1")

	exists, existsErr := s.repo.Exists(context.Background(), "promo1")
	s.Require().NoError(existsErr)
	s.True(exists)

	// Уникальный индекс по code превращает вторую вставку в ErrDuplicateKey.
	dup := models.Link{Code: "promo1", TargetURL: gofakeit.URL(), Active: true}
	err := s.repo.Create(context.Background(), &dup)
	s.ErrorIs(err, repositories.ErrDuplicateKey)
}

func (s *LinkRepoSuite) TestRecordClick() {
	s.createLink("promo1")

	first, err := s.repo.RecordClick(context.Background(), "promo1")
	s.Require().NoError(err)
	s.Equal(uint64(1), first.ClickCount)
	s.Require().NotNil(first.LastClickedAt)

	second, err := s.repo.RecordClick(context.Background(), "promo1")
	s.Require().NoError(err)
	s.Equal(uint64(2), second.ClickCount)
}

func (s *LinkRepoSuite) TestRecordClick_AbsentAndInactive() {
	_, absentErr := s.repo.RecordClick(context.Background(), "nope")
	s.ErrorIs(absentErr, repositories.ErrNotFound)

	s.createLink("retired")
	_, deactErr := s.repo.Deactivate(context.Background(), "retired")
	s.Require().NoError(deactErr)

	_, inactiveErr := s.repo.RecordClick(context.Background(), "retired")
	s.ErrorIs(inactiveErr, repositories.ErrNotFound)

	link, getErr := s.repo.GetByCode(context.Background(), "retired")
	s.Require().NoError(getErr)
	s.Equal(uint64(0), link.ClickCount)
	s.Nil(link.LastClickedAt)
}

func (s *LinkRepoSuite) TestGetActiveByCode() {
	s.createLink("promo1")

	link, err := s.repo.GetActiveByCode(context.Background(), "promo1")
	s.Require().NoError(err)
	s.True(link.Active)

	_, deactErr := s.repo.Deactivate(context.Background(), "promo1")
	s.Require().NoError(deactErr)

	_, activeErr := s.repo.GetActiveByCode(context.Background(), "promo1")
	s.ErrorIs(activeErr, repositories.ErrNotFound)
}

func (s *LinkRepoSuite) TestDeactivate_Idempotent() {
	s.createLink("promo1")

	first, err := s.repo.Deactivate(context.Background(), "promo1")
	s.Require().NoError(err)
	s.False(first.Active)

	second, err := s.repo.Deactivate(context.Background(), "promo1")
	s.Require().NoError(err)
	s.False(second.Active)
}

func (s *LinkRepoSuite) TestDeactivate_NotFound() {
	_, err := s.repo.Deactivate(context.Background(), "nope")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *LinkRepoSuite) TestList() {
	base := time.Now().UTC().Add(-time.Hour)
	for i := range 5 {
		link := models.Link{
			Code:      fmt.Sprintf("code%d", i),
			TargetURL: gofakeit.URL(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Active:    true,
		}
		s.Require().NoError(s.repo.Create(context.Background(), &link))
	}

	links, total, err := s.repo.List(context.Background(), repositories.Page{Offset: 0, Limit: 3})
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(links, 3)
	s.Equal("code4", links[0].Code)
	s.Equal("code3", links[1].Code)
	s.Equal("code2", links[2].Code)

	tail, total2, err := s.repo.List(context.Background(), repositories.Page{Offset: 3, Limit: 3})
	s.Require().NoError(err)
	s.Equal(int64(5), total2)
	s.Require().Len(tail, 2)
	s.Equal("code1", tail[0].Code)
	s.Equal("code0", tail[1].Code)
}

func (s *LinkRepoSuite) TestList_OffsetAndLimitBounds() {
	s.createLink("only")

	// Отрицательный offset равнозначен нулевому.
	links, total, err := s.repo.List(context.Background(), repositories.Page{Offset: -1, Limit: 5})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(links, 1)

	// Нулевой limit дает пустую страницу, total считается по всему хранилищу.
	empty, total2, err := s.repo.List(context.Background(), repositories.Page{Offset: 0, Limit: 0})
	s.Require().NoError(err)
	s.Equal(int64(1), total2)
	s.Empty(empty)
}

func TestLinkRepoSuite(t *testing.T) {
	suite.Run(t, new(LinkRepoSuite))
}
