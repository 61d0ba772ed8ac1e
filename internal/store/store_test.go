package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"region-directory/pkg/model"
)

// RegionStoreSuite runs the same contract checks against every backend.
type RegionStoreSuite struct {
	suite.Suite
	newStore func() Backend
	store    Backend
	ctx      context.Context
}

func (s *RegionStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *RegionStoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &RegionStoreSuite{
		newStore: func() Backend { return NewMemoryStore() },
	})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &RegionStoreSuite{
		newStore: func() Backend {
			backend, err := Open(context.Background(), Config{
				Driver:      DriverSQLite,
				DSN:         ":memory:",
				AutoMigrate: true,
			})
			if err != nil {
				t.Fatalf("failed to open sqlite store: %v", err)
			}
			return backend
		},
	})
}

func (s *RegionStoreSuite) save(id, name, shortName string) *model.Region {
	region := &model.Region{ID: id, Name: name, ShortName: shortName}
	s.Require().NoError(s.store.Save(s.ctx, region))
	return region
}

func (s *RegionStoreSuite) TestSaveAndGetByID() {
	s.Run("assigns a surrogate key and finds the region", func() {
		saved := s.save("78", "город Москва", "МСК")
		s.NotZero(saved.Key)

		found, err := s.store.GetByID(s.ctx, "78")
		s.Require().NoError(err)
		s.Equal(*saved, *found)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.GetByID(s.ctx, "99")
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *RegionStoreSuite) TestSaveRejectsDuplicateID() {
	s.save("10", "город Москва", "МСК")

	err := s.store.Save(s.ctx, &model.Region{ID: "10", Name: "Вологодская область", ShortName: "ВОЛ"})
	s.ErrorIs(err, ErrDuplicateKey)

	found, err := s.store.GetByID(s.ctx, "10")
	s.Require().NoError(err)
	s.Equal("город Москва", found.Name)
}

func (s *RegionStoreSuite) TestGetAllOrdersByName() {
	all, err := s.store.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)

	s.save("10", "Вологодская область", "ВОЛ")
	s.save("11", "Волгоградская область", "ВЛГ")
	s.save("12", "Архангельская область", "АРХ")

	all, err = s.store.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("12", all[0].ID)
	s.Equal("11", all[1].ID)
	s.Equal("10", all[2].ID)
}

func (s *RegionStoreSuite) TestFilters() {
	s.save("10", "Вологодская область", "ВОЛ")
	s.save("11", "Волгоградская область", "ВЛГ")
	s.save("12", "Архангельская область", "АРХ")

	s.Run("by name", func() {
		regions, err := s.store.GetByName(s.ctx, "Архангельская область")
		s.Require().NoError(err)
		s.Require().Len(regions, 1)
		s.Equal("12", regions[0].ID)

		regions, err = s.store.GetByName(s.ctx, "Архангельская")
		s.Require().NoError(err)
		s.Empty(regions)
	})

	s.Run("by name beginning", func() {
		regions, err := s.store.GetByNameBeginning(s.ctx, "Вол")
		s.Require().NoError(err)
		s.Require().Len(regions, 2)
		s.Equal("11", regions[0].ID)
		s.Equal("10", regions[1].ID)

		regions, err = s.store.GetByNameBeginning(s.ctx, "Мос")
		s.Require().NoError(err)
		s.Empty(regions)
	})

	s.Run("wildcards in the prefix match literally", func() {
		regions, err := s.store.GetByNameBeginning(s.ctx, "%")
		s.Require().NoError(err)
		s.Empty(regions)
	})

	s.Run("by short name", func() {
		regions, err := s.store.GetByShortName(s.ctx, "ВЛГ")
		s.Require().NoError(err)
		s.Require().Len(regions, 1)
		s.Equal("11", regions[0].ID)
	})
}

func (s *RegionStoreSuite) TestUpdateByID() {
	original := s.save("10", "Москва", "МСК")
	s.save("11", "Волгоградская область", "ВЛГ")

	s.Run("updates fields in place", func() {
		rows, err := s.store.UpdateByID(s.ctx, "10", &model.Region{ID: "10", Name: "город Москва", ShortName: "МСК"})
		s.Require().NoError(err)
		s.EqualValues(1, rows)

		found, err := s.store.GetByID(s.ctx, "10")
		s.Require().NoError(err)
		s.Equal("город Москва", found.Name)
		s.Equal(original.Key, found.Key)
	})

	s.Run("rejects an id owned by another region", func() {
		_, err := s.store.UpdateByID(s.ctx, "10", &model.Region{ID: "11", Name: "город Москва", ShortName: "МСК"})
		s.ErrorIs(err, ErrDuplicateKey)

		found, err := s.store.GetByID(s.ctx, "11")
		s.Require().NoError(err)
		s.Equal("Волгоградская область", found.Name)
	})

	s.Run("moves the region to a new id keeping its key", func() {
		rows, err := s.store.UpdateByID(s.ctx, "10", &model.Region{ID: "77", Name: "город Москва", ShortName: "МСК"})
		s.Require().NoError(err)
		s.EqualValues(1, rows)

		_, err = s.store.GetByID(s.ctx, "10")
		s.ErrorIs(err, ErrNotFound)

		found, err := s.store.GetByID(s.ctx, "77")
		s.Require().NoError(err)
		s.Equal(original.Key, found.Key)
	})

	s.Run("reports zero rows for unknown id", func() {
		rows, err := s.store.UpdateByID(s.ctx, "55", &model.Region{ID: "55", Name: "Москва", ShortName: "МСК"})
		s.Require().NoError(err)
		s.Zero(rows)

		_, err = s.store.GetByID(s.ctx, "55")
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *RegionStoreSuite) TestDeleteByID() {
	s.save("10", "Москва", "МСК")

	rows, err := s.store.DeleteByID(s.ctx, "10")
	s.Require().NoError(err)
	s.EqualValues(1, rows)

	_, err = s.store.GetByID(s.ctx, "10")
	s.ErrorIs(err, ErrNotFound)

	rows, err = s.store.DeleteByID(s.ctx, "10")
	s.Require().NoError(err)
	s.Zero(rows)
}

func (s *RegionStoreSuite) TestLongNamesRoundTrip() {
	long := strings.Repeat("Новгородская область ", 20)
	s.save("53", long, "НВГ")

	found, err := s.store.GetByID(s.ctx, "53")
	s.Require().NoError(err)
	s.Equal(long, found.Name)

	updated, err := s.store.UpdateByID(s.ctx, "53", &model.Region{ID: "53", Name: long + "Новгород", ShortName: "НВГ"})
	s.Require().NoError(err)
	s.EqualValues(1, updated)
}

func (s *RegionStoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func TestSchemaDoesNotBoundNameLength(t *testing.T) {
	for driver, statements := range schemas {
		table := statements[0]
		assert.Regexp(t, `(?m)^\s*name\s+TEXT\s+NOT NULL,$`, table, driver)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle", DSN: "whatever"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
