//go:build integration

package lawref_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"codecheck/internal/lawref"
	"codecheck/pkg/testutil/containers"
)

const lawRefsSchema = `
CREATE TABLE IF NOT EXISTS law_refs (
    code    TEXT PRIMARY KEY,
    title   TEXT NOT NULL,
    article TEXT NOT NULL DEFAULT '',
    summary TEXT NOT NULL DEFAULT '',
    url     TEXT NOT NULL DEFAULT ''
)`

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *lawref.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.postgres.Exec(s.T(), lawRefsSchema)
	s.store = lawref.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "law_refs"))
}

func (s *PostgresStoreSuite) TestSaveAndFind() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, lawref.LawDoc{
		Code:    "주차장법-19",
		Title:   "주차장법",
		Article: "제19조",
		Summary: "부설주차장의 설치 의무를 규정한다.",
	}))
	s.Require().NoError(s.store.Save(ctx, lawref.LawDoc{
		Code:  "건축법-44",
		Title: "건축법",
	}))

	found, missing, err := s.store.FindByCodes(ctx, []string{"주차장법-19", "건축법-44", "건축법-57"})
	s.Require().NoError(err)

	s.Len(found, 2)
	s.Equal("제19조", found["주차장법-19"].Article)
	s.Equal([]string{"건축법-57"}, missing)
}

func (s *PostgresStoreSuite) TestSaveUpserts() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, lawref.LawDoc{Code: "건축법-57", Title: "건축법"}))
	s.Require().NoError(s.store.Save(ctx, lawref.LawDoc{Code: "건축법-57", Title: "건축법", Article: "제57조"}))

	found, _, err := s.store.FindByCodes(ctx, []string{"건축법-57"})
	s.Require().NoError(err)
	s.Equal("제57조", found["건축법-57"].Article)
}

func (s *PostgresStoreSuite) TestEmptyAndDuplicateCodes() {
	ctx := context.Background()

	found, missing, err := s.store.FindByCodes(ctx, nil)
	s.Require().NoError(err)
	s.Empty(found)
	s.Empty(missing)

	s.Require().NoError(s.store.Save(ctx, lawref.LawDoc{Code: "주차장법-19", Title: "주차장법"}))

	found, missing, err = s.store.FindByCodes(ctx, []string{"주차장법-19", "주차장법-19", " "})
	s.Require().NoError(err)
	s.Len(found, 1)
	s.Empty(missing)
}
