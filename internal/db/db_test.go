package db_test

import (
	"blockvault/internal/db"
	"context"
	"database/sql"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("Database", func() {
	type Entry struct {
		Number uint64 `gorm:"primaryKey;autoIncrement:false"`
		Name   string
	}

	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Exists", func() {
		var exists bool

		JustBeforeEach(func() {
			exists, err = testDB.Exists(ctx, &Entry{}, "number", 7)
		})

		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "entries" WHERE number = \$1`).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("reports true", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "entries" WHERE number = \$1`).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("reports false", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "entries"`).
					WillReturnError(errors.New("connection reset"))
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(ContainSubstring("connection reset")))
			})
		})
	})

	Describe("SaveToTable", func() {
		JustBeforeEach(func() {
			err = testDB.SaveToTable(ctx, &Entry{Number: 7, Name: "seven"})
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "entries" \("number","name"\) VALUES \(\$1,\$2\)`).
					WithArgs(7, "seven").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("stores the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the key already exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "entries"`).
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			})

			It("returns ErrDuplicate", func() {
				Expect(err).To(MatchError(db.ErrDuplicate))
			})
		})
	})

	Describe("GetOneBy", func() {
		var entry Entry

		JustBeforeEach(func() {
			entry = Entry{}
			err = testDB.GetOneBy(ctx, "number", 7, &entry)
		})

		When("the row exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE number = \$1`).
					WillReturnRows(sqlmock.NewRows([]string{"number", "name"}).AddRow(7, "seven"))
			})

			It("fills the entity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entry).To(Equal(Entry{Number: 7, Name: "seven"}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE number = \$1`).
					WillReturnRows(sqlmock.NewRows([]string{"number", "name"}))
			})

			It("returns ErrNotFound", func() {
				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("GetAll", func() {
		var entries []Entry

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "entries"`).
				WillReturnRows(sqlmock.NewRows([]string{"number", "name"}).
					AddRow(1, "one").
					AddRow(2, "two"))
		})

		JustBeforeEach(func() {
			entries = []Entry{}
			err = testDB.GetAll(ctx, &entries)
		})

		It("returns every row", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]Entry{{1, "one"}, {2, "two"}}))
		})
	})

	Describe("DeleteAll", func() {
		var deleted int64

		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "entries"`).
				WillReturnResult(sqlmock.NewResult(0, 3))
			mock.ExpectCommit()
		})

		JustBeforeEach(func() {
			deleted, err = testDB.DeleteAll(ctx, &Entry{})
		})

		It("reports the deleted row count", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Replace", func() {
		JustBeforeEach(func() {
			err = testDB.Replace(ctx, &Entry{}, "number", 7, &Entry{Number: 7, Name: "seven again"})
		})

		When("the row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "entries" WHERE number = \$1`).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "entries"`).
					WithArgs(7, "seven again").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("swaps the row in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the row does not exist", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "entries" WHERE number = \$1`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			})

			It("returns ErrNotFound and rolls back", func() {
				Expect(err).To(MatchError(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
