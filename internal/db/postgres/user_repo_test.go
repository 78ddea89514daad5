package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	emailViolation := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", emailViolation, "users_email_key", true},
		{"wrapped error still matches", fmt.Errorf("insert: %w", emailViolation), "users_email_key", true},
		{"different constraint", emailViolation, "likes_post_id_user_id_key", false},
		{"non-unique pq error", &pq.Error{Code: "23503", Constraint: "posts_author_id_fkey"}, "posts_author_id_fkey", false},
		{"plain error", errors.New("connection reset"), "users_email_key", false},
		{"nil error", nil, "users_email_key", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueViolation(tc.err, tc.constraint))
		})
	}
}
