package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/repository"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
)

func entryFor(judge string, score int) model.ScoreEntry {
	return model.ScoreEntry{
		ProblemRelevance: score, TechnicalFeasibility: score, StatementAlignment: score,
		Creativity: score, Presentation: score, PlatformUse: score,
		UpdatedBy: judge,
		UpdatedAt: "2026-08-24T10:00:00Z",
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a file store on a path that does not exist yet", t, func() {
		path := filepath.Join(t.TempDir(), "scores.json")
		store := repository.NewFileStore(path)

		Convey("GetAll returns an empty book, not an error", func() {
			book, err := store.GetAll(ctx)
			So(err, ShouldBeNil)
			So(book, ShouldBeEmpty)
		})

		Convey("The first upsert creates the file and returns the merged record", func() {
			rec, err := store.Upsert(ctx, "T1", entryFor("j1@example.com", 5))
			So(err, ShouldBeNil)
			So(rec.Judges, ShouldHaveLength, 1)
			So(rec.UpdatedBy, ShouldEqual, "j1@example.com")

			_, statErr := os.Stat(path)
			So(statErr, ShouldBeNil)

			Convey("And a second judge appends under the same team", func() {
				rec, err := store.Upsert(ctx, "T1", entryFor("j2@example.com", 10))
				So(err, ShouldBeNil)
				So(rec.Judges, ShouldHaveLength, 2)
			})

			Convey("And the same judge resubmitting replaces, never duplicates", func() {
				rec, err := store.Upsert(ctx, "T1", entryFor("j1@example.com", 15))
				So(err, ShouldBeNil)
				So(rec.Judges, ShouldHaveLength, 1)
				So(rec.Judges[0].ProblemRelevance, ShouldEqual, 15)
			})

			Convey("And a fresh store on the same path reads identical records back", func() {
				before, err := store.GetAll(ctx)
				So(err, ShouldBeNil)

				reopened := repository.NewFileStore(path)
				after, err := reopened.GetAll(ctx)
				So(err, ShouldBeNil)
				So(after, ShouldResemble, before)
			})
		})

		Convey("An upsert without a team id is rejected before touching disk", func() {
			_, err := store.Upsert(ctx, "", entryFor("j1@example.com", 5))
			So(err, ShouldWrap, repository.ErrEmptyTeamID)

			_, statErr := os.Stat(path)
			So(os.IsNotExist(statErr), ShouldBeTrue)
		})

		Convey("An upsert without a judge id is rejected before touching disk", func() {
			e := entryFor("", 5)
			_, err := store.Upsert(ctx, "T1", e)
			So(err, ShouldWrap, repository.ErrEmptyJudgeID)
		})
	})

	Convey("Given a corrupt score file", t, func() {
		path := filepath.Join(t.TempDir(), "scores.json")
		So(os.WriteFile(path, []byte("{not json"), 0o644), ShouldBeNil)
		store := repository.NewFileStore(path)

		Convey("Reads surface a storage error", func() {
			_, err := store.GetAll(ctx)
			So(err, ShouldWrap, repository.ErrStorage)
		})

		Convey("Writes surface a storage error and leave the file untouched", func() {
			_, err := store.Upsert(ctx, "T1", entryFor("j1@example.com", 5))
			So(err, ShouldWrap, repository.ErrStorage)

			data, readErr := os.ReadFile(path)
			So(readErr, ShouldBeNil)
			So(string(data), ShouldEqual, "{not json")
		})
	})

	Convey("Given an empty file left by a crashed first run", t, func() {
		path := filepath.Join(t.TempDir(), "scores.json")
		So(os.WriteFile(path, nil, 0o644), ShouldBeNil)
		store := repository.NewFileStore(path)

		Convey("It reads as an empty book", func() {
			book, err := store.GetAll(ctx)
			So(err, ShouldBeNil)
			So(book, ShouldBeEmpty)
		})
	})
}
