package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a placeholder password hash. Returns the stored row.
func SeedUser(t *testing.T, pool *pgxpool.Pool, isAdmin bool) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	user := domain.User{
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehol",
		IsAdmin:      isAdmin,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		user.Username, user.Email, user.PasswordHash, user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedSweet inserts a sweet with a unique name built from prefix.
func SeedSweet(t *testing.T, pool *pgxpool.Pool, prefix, category string, price float64, quantity int) domain.Sweet {
	t.Helper()

	s := domain.Sweet{
		Name:     prefix + "-" + UniqueSuffix(),
		Category: category,
		Price:    price,
		Quantity: quantity,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO sweets (name, category, price, quantity)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Category, s.Price, s.Quantity,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSweet insert: %v", err)
	}

	return s
}
