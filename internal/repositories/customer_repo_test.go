package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"navetteclub/internal/domain/models"
)

func customerRows(id int64, email string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "country", "created_at"}).
		AddRow(id, "Amira", "Ben Salah", email, "+21612345678", "Tunisie", time.Now())
}

func TestUpsertByEmailReturnsExistingWithoutInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email=").
		WithArgs("amira@example.com").
		WillReturnRows(customerRows(7, "amira@example.com"))

	repo := CustomerRepo{DB: db}
	c, err := repo.UpsertByEmail(models.CustomerInput{
		FirstName: "Amira",
		LastName:  "Ben Salah",
		Email:     "  Amira@Example.COM ",
		Phone:     "+21612345678",
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if c.ID != 7 {
		t.Fatalf("expected existing customer 7, got %d", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertByEmailInsertsOnMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email=").
		WithArgs("new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO customers").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id=").
		WithArgs(int64(12)).
		WillReturnRows(customerRows(12, "new@example.com"))

	repo := CustomerRepo{DB: db}
	c, err := repo.UpsertByEmail(models.CustomerInput{
		FirstName: "Amira", LastName: "Ben Salah", Email: "new@example.com", Phone: "+216",
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if c.ID != 12 {
		t.Fatalf("expected created customer 12, got %d", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertByEmailDuplicateKeyFallsBackToLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email=").
		WithArgs("race@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO customers").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email=").
		WithArgs("race@example.com").
		WillReturnRows(customerRows(3, "race@example.com"))

	repo := CustomerRepo{DB: db}
	c, err := repo.UpsertByEmail(models.CustomerInput{
		FirstName: "Amira", LastName: "Ben Salah", Email: "race@example.com", Phone: "+216",
	})
	if err != nil {
		t.Fatalf("upsert after duplicate key should succeed, got %v", err)
	}
	if c.ID != 3 {
		t.Fatalf("expected row created by concurrent writer, got id %d", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
