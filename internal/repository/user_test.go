package repository

import (
	"errors"
	"testing"
)

func TestDuplicateKeyField(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{
			name: "email index",
			msg:  `write exception: write errors: [E11000 duplicate key error collection: ishahbak.users index: email_1 dup key: { email: "a@x.com" }]`,
			want: ErrDuplicateEmail,
		},
		{
			name: "username index",
			msg:  `write exception: write errors: [E11000 duplicate key error collection: ishahbak.users index: username_1 dup key: { username: "alice" }]`,
			want: ErrDuplicateUsername,
		},
		{
			// The colliding value mentions "email" but the index is the
			// username one.
			name: "username containing email",
			msg:  `write exception: write errors: [E11000 duplicate key error collection: ishahbak.users index: username_1 dup key: { username: "emailfan" }]`,
			want: ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateKeyField(errors.New(tt.msg)); !errors.Is(got, tt.want) {
				t.Errorf("duplicateKeyField() = %v, want %v", got, tt.want)
			}
		})
	}
}
