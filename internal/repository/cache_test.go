package repository_test

import (
	"blockvault/internal/repository"
	"blockvault/internal/repository/fake"
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ = Describe("CachedBlockRepository", func() {
	var (
		fakeStorage *fake.Storage
		fakeCache   *fake.SetCache
		repo        *repository.CachedBlockRepository
		ctx         context.Context
		testErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		fakeCache = new(fake.SetCache)
		ctx = context.Background()
		testErr = errors.New("test error")

		fakeCache.SIsMemberReturns(redis.NewBoolResult(false, nil))
		fakeCache.SAddReturns(redis.NewIntResult(1, nil))
		fakeCache.DelReturns(redis.NewIntResult(1, nil))
		fakeCache.ExpireNXReturns(redis.NewBoolResult(true, nil))

		repo = repository.NewCachedBlockRepository(zap.NewNop().Sugar(), repository.NewBlockRepository(fakeStorage), fakeCache, 10*time.Minute)
	})

	Describe("BlockExists", func() {
		When("the number is cached", func() {
			BeforeEach(func() {
				fakeCache.SIsMemberReturns(redis.NewBoolResult(true, nil))
			})

			It("skips the database", func() {
				exists, err := repo.BlockExists(ctx, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(fakeStorage.ExistsCallCount()).To(Equal(0))

				_, key, member := fakeCache.SIsMemberArgsForCall(0)
				Expect(key).To(Equal("blockvault:blocks:stored"))
				Expect(member).To(Equal(uint64(11)))
			})
		})

		When("the number is stored but not cached", func() {
			BeforeEach(func() {
				fakeStorage.ExistsReturns(true, nil)
			})

			It("caches it", func() {
				exists, err := repo.BlockExists(ctx, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(fakeCache.SAddCallCount()).To(Equal(1))

				_, _, members := fakeCache.SAddArgsForCall(0)
				Expect(members).To(Equal([]interface{}{uint64(11)}))
			})
		})

		When("the number is unknown", func() {
			It("does not cache it", func() {
				exists, err := repo.BlockExists(ctx, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
				Expect(fakeCache.SAddCallCount()).To(Equal(0))
			})
		})

		When("redis is down", func() {
			BeforeEach(func() {
				fakeCache.SIsMemberReturns(redis.NewBoolResult(false, testErr))
				fakeStorage.ExistsReturns(true, nil)
			})

			It("falls back to the database", func() {
				exists, err := repo.BlockExists(ctx, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(fakeStorage.ExistsCallCount()).To(Equal(1))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeStorage.ExistsReturns(false, testErr)
			})

			It("returns the error", func() {
				_, err := repo.BlockExists(ctx, 11)
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("SaveBlock", func() {
		It("caches the saved number", func() {
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 20})).To(Succeed())
			_, _, members := fakeCache.SAddArgsForCall(0)
			Expect(members).To(Equal([]interface{}{uint64(20)}))
		})

		It("does not cache a failed save", func() {
			fakeStorage.SaveToTableReturns(testErr)
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 20})).To(MatchError(testErr))
			Expect(fakeCache.SAddCallCount()).To(Equal(0))
		})

		It("ignores cache write failures", func() {
			fakeCache.SAddReturns(redis.NewIntResult(0, testErr))
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 20})).To(Succeed())
			Expect(fakeCache.ExpireNXCallCount()).To(Equal(0))
		})

		It("bounds the lifetime of the cached set", func() {
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 20})).To(Succeed())
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 21})).To(Succeed())

			Expect(fakeCache.ExpireNXCallCount()).To(Equal(2))
			for i := 0; i < fakeCache.ExpireNXCallCount(); i++ {
				_, key, ttl := fakeCache.ExpireNXArgsForCall(i)
				Expect(key).To(Equal("blockvault:blocks:stored"))
				Expect(ttl).To(Equal(10 * time.Minute))
			}
		})

		It("ignores expiry failures", func() {
			fakeCache.ExpireNXReturns(redis.NewBoolResult(false, testErr))
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 20})).To(Succeed())
		})
	})

	When("no ttl is given", func() {
		BeforeEach(func() {
			repo = repository.NewCachedBlockRepository(zap.NewNop().Sugar(), repository.NewBlockRepository(fakeStorage), fakeCache, 0)
		})

		It("expires the set after the default ttl", func() {
			Expect(repo.SaveBlock(ctx, repository.Block{Number: 20})).To(Succeed())
			_, _, ttl := fakeCache.ExpireNXArgsForCall(0)
			Expect(ttl).To(Equal(repository.DefaultCacheTTL))
		})
	})

	Describe("DeleteAllBlocks", func() {
		It("clears the cached set", func() {
			fakeStorage.DeleteAllReturns(3, nil)
			deleted, err := repo.DeleteAllBlocks(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(3)))

			_, keys := fakeCache.DelArgsForCall(0)
			Expect(keys).To(Equal([]string{"blockvault:blocks:stored"}))
		})

		It("keeps the cache when the delete fails", func() {
			fakeStorage.DeleteAllReturns(0, testErr)
			_, err := repo.DeleteAllBlocks(ctx)
			Expect(err).To(MatchError(testErr))
			Expect(fakeCache.DelCallCount()).To(Equal(0))
		})
	})
})
