package repository_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/innerlens/innerlens/internal/adapters/repository"
	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func sampleSession(id string) *model.Session {
	now := time.Now().UTC()
	return &model.Session{
		ID: id,
		Profile: model.UserProfile{
			AgeGroup:   model.AgeGroupAdult,
			Occupation: model.OccupationProfessional,
			Interests:  []string{"reading"},
		},
		Answers: []mbti.Answer{
			{QuestionID: "ei-1", Dimension: mbti.DimensionEI, Polarity: mbti.PolarityPositive, Value: 2},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	convey.Convey("Given a memory session store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx)
		defer func() { _ = store.Close() }()

		convey.Convey("When creating and fetching a session", func() {
			err := store.Create(ctx, sampleSession("s-1"))
			convey.So(err, convey.ShouldBeNil)

			got, err := store.Get(ctx, "s-1")

			convey.Convey("Then the session should round-trip", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldNotBeNil)
				convey.So(got.ID, convey.ShouldEqual, "s-1")
				convey.So(got.Profile.Occupation, convey.ShouldEqual, model.OccupationProfessional)
				convey.So(got.Answers, convey.ShouldHaveLength, 1)
			})

			convey.Convey("And the store should count it", func() {
				convey.So(store.Count(ctx), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When creating a duplicate id", func() {
			convey.So(store.Create(ctx, sampleSession("s-dup")), convey.ShouldBeNil)
			err := store.Create(ctx, sampleSession("s-dup"))

			convey.Convey("Then it should report the conflict", func() {
				convey.So(errors.Is(err, repository.ErrAlreadyExists), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When fetching an unknown session", func() {
			_, err := store.Get(ctx, "missing")

			convey.Convey("Then it should report not found", func() {
				convey.So(errors.Is(err, repository.ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When saving an existing session", func() {
			convey.So(store.Create(ctx, sampleSession("s-2")), convey.ShouldBeNil)

			updated := sampleSession("s-2")
			updated.UpsertAnswer(mbti.Answer{QuestionID: "sn-1", Dimension: mbti.DimensionSN, Polarity: mbti.PolarityPositive, Value: -1})
			convey.So(store.Save(ctx, updated), convey.ShouldBeNil)

			got, err := store.Get(ctx, "s-2")

			convey.Convey("Then the update should be visible", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.Answers, convey.ShouldHaveLength, 2)
			})
		})

		convey.Convey("When saving an unknown session", func() {
			err := store.Save(ctx, sampleSession("never-created"))

			convey.Convey("Then it should report not found", func() {
				convey.So(errors.Is(err, repository.ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When deleting a session", func() {
			convey.So(store.Create(ctx, sampleSession("s-3")), convey.ShouldBeNil)
			convey.So(store.Delete(ctx, "s-3"), convey.ShouldBeNil)

			_, err := store.Get(ctx, "s-3")

			convey.Convey("Then it should be gone", func() {
				convey.So(errors.Is(err, repository.ErrNotFound), convey.ShouldBeTrue)
			})

			convey.Convey("And deleting again should report not found", func() {
				convey.So(errors.Is(store.Delete(ctx, "s-3"), repository.ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When creating with a nil or blank session", func() {
			convey.So(errors.Is(store.Create(ctx, nil), repository.ErrMissingSession), convey.ShouldBeTrue)
			convey.So(errors.Is(store.Create(ctx, &model.Session{}), repository.ErrMissingSession), convey.ShouldBeTrue)
		})
	})
}

func TestMemoryStoreIsolation(t *testing.T) {
	convey.Convey("Given a memory session store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx)
		defer func() { _ = store.Close() }()

		convey.Convey("When mutating a session after storing it", func() {
			s := sampleSession("iso-1")
			convey.So(store.Create(ctx, s), convey.ShouldBeNil)
			s.Answers[0].Value = -3

			got, err := store.Get(ctx, "iso-1")

			convey.Convey("Then the stored copy should be unaffected", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.Answers[0].Value, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When mutating a fetched session", func() {
			convey.So(store.Create(ctx, sampleSession("iso-2")), convey.ShouldBeNil)

			first, err := store.Get(ctx, "iso-2")
			convey.So(err, convey.ShouldBeNil)
			first.Answers[0].Value = -3

			second, err := store.Get(ctx, "iso-2")

			convey.Convey("Then later reads should be unaffected", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(second.Answers[0].Value, convey.ShouldEqual, 2)
			})
		})
	})
}

func TestMemoryStoreExpiry(t *testing.T) {
	convey.Convey("Given a memory store with a short TTL", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx,
			repository.WithTTL(20*time.Millisecond),
			repository.WithJanitorInterval(5*time.Millisecond),
		)
		defer func() { _ = store.Close() }()

		convey.Convey("When a session outlives its TTL", func() {
			convey.So(store.Create(ctx, sampleSession("ttl-1")), convey.ShouldBeNil)
			time.Sleep(50 * time.Millisecond)

			_, err := store.Get(ctx, "ttl-1")

			convey.Convey("Then it should expire", func() {
				convey.So(errors.Is(err, repository.ErrNotFound), convey.ShouldBeTrue)
				convey.So(store.Count(ctx), convey.ShouldEqual, 0)
			})

			convey.Convey("And its id should be reusable", func() {
				convey.So(store.Create(ctx, sampleSession("ttl-1")), convey.ShouldBeNil)
			})
		})

		convey.Convey("When saving refreshes the TTL", func() {
			convey.So(store.Create(ctx, sampleSession("ttl-2")), convey.ShouldBeNil)
			time.Sleep(12 * time.Millisecond)
			convey.So(store.Save(ctx, sampleSession("ttl-2")), convey.ShouldBeNil)
			time.Sleep(12 * time.Millisecond)

			_, err := store.Get(ctx, "ttl-2")

			convey.Convey("Then the session should still be live", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})
	})
}

func TestMemoryStoreSharding(t *testing.T) {
	convey.Convey("Given a memory store with several shards", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx, repository.WithShardCount(16))
		defer func() { _ = store.Close() }()

		convey.Convey("When creating many sessions concurrently", func() {
			const n = 64
			errCh := make(chan error, n)
			for i := 0; i < n; i++ {
				go func(i int) {
					errCh <- store.Create(ctx, sampleSession("conc-"+strconv.Itoa(i)))
				}(i)
			}
			for i := 0; i < n; i++ {
				convey.So(<-errCh, convey.ShouldBeNil)
			}

			convey.Convey("Then all sessions should be tracked", func() {
				convey.So(store.Count(ctx), convey.ShouldEqual, n)
			})
		})
	})
}
