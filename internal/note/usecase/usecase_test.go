package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/notewallet/notewallet/internal/note/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
	"github.com/notewallet/notewallet/internal/pkg/instrument"
	"github.com/notewallet/notewallet/internal/pkg/jwt"
	"github.com/notewallet/notewallet/internal/pkg/validator"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type seqID struct{ next int64 }

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

type fakeRepo struct {
	emails map[int64]string      // account id -> email
	notes  map[int64]entity.Note // note id -> note

	deletedIDs []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		emails: make(map[int64]string),
		notes:  make(map[int64]entity.Note),
	}
}

func (f *fakeRepo) GetAccountEmailByID(_ context.Context, id int64) (string, error) {
	email, ok := f.emails[id]
	if !ok {
		return "", goerror.ErrNotFound
	}
	return email, nil
}

func (f *fakeRepo) ListNotesByEmail(_ context.Context, email string) ([]entity.Note, error) {
	var out []entity.Note
	for _, n := range f.notes {
		if n.UserEmail == email {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) CreateNote(_ context.Context, in entity.Note) error {
	f.notes[in.ID] = in
	return nil
}

func (f *fakeRepo) GetNoteByID(_ context.Context, id int64) (*entity.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &n, nil
}

func (f *fakeRepo) DeleteNote(_ context.Context, id int64) error {
	if _, ok := f.notes[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.notes, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type testEnv struct {
	uc   *Usecase
	repo *fakeRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	env := &testEnv{repo: newFakeRepo()}
	env.uc = New(Dependency{
		RepoDB:     env.repo,
		Validator:  v10,
		UID:        &seqID{next: 100},
		Clock:      fixedClock{now: testNow},
		Instrument: instrument.NewNoop(),
	})

	env.repo.emails[42] = "ada@example.com"
	env.repo.emails[43] = "grace@example.com"

	return env
}

func authCtx(accountID int64, email string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		AccountID:    accountID,
		AccountEmail: email,
	})
}

func wantBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror.Error, got %v", err)
	}
	if gerr.Msg() != msg {
		t.Fatalf("expected message %q, got %q", msg, gerr.Msg())
	}
	if gerr.StatusCode() != status {
		t.Fatalf("expected status %d, got %d", status, gerr.StatusCode())
	}
}
