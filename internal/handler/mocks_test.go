package handler

import (
	"context"

	"github.com/hitoshi/movlist/internal/model"
)

// --- モック定義 ---

type mockAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*model.Session, error)
	logoutFn func(ctx context.Context, token string) error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, model.ErrInvalidCredentials
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

type mockUserService struct {
	signupFn     func(ctx context.Context, email, password string) error
	listEmailsFn func(ctx context.Context) ([]string, error)
}

func (m *mockUserService) Signup(ctx context.Context, email, password string) error {
	if m.signupFn != nil {
		return m.signupFn(ctx, email, password)
	}
	return nil
}

func (m *mockUserService) ListEmails(ctx context.Context) ([]string, error) {
	if m.listEmailsFn != nil {
		return m.listEmailsFn(ctx)
	}
	return []string{}, nil
}

type mockListService struct {
	createFn  func(ctx context.Context, identity model.Identity, input model.NewList) (int64, error)
	myListsFn func(ctx context.Context, identity model.Identity) ([]model.ListSummary, error)
}

func (m *mockListService) Create(ctx context.Context, identity model.Identity, input model.NewList) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, identity, input)
	}
	return 1, nil
}

func (m *mockListService) MyLists(ctx context.Context, identity model.Identity) ([]model.ListSummary, error) {
	if m.myListsFn != nil {
		return m.myListsFn(ctx, identity)
	}
	return []model.ListSummary{}, nil
}

type mockMovieService struct {
	listMoviesFn func(ctx context.Context) ([]*model.Movie, error)
	addMovieFn   func(ctx context.Context, movie model.Movie) (*model.Movie, error)
}

func (m *mockMovieService) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	if m.listMoviesFn != nil {
		return m.listMoviesFn(ctx)
	}
	return []*model.Movie{}, nil
}

func (m *mockMovieService) AddMovie(ctx context.Context, movie model.Movie) (*model.Movie, error) {
	if m.addMovieFn != nil {
		return m.addMovieFn(ctx, movie)
	}
	movie.ID = 1
	return &movie, nil
}

type mockResolver struct {
	tokens map[string]string
}

func (m *mockResolver) Resolve(_ context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, model.ErrNoCookie
	}
	email, ok := m.tokens[token]
	if !ok {
		return model.Identity{}, model.ErrUnknownToken
	}
	return model.Identity{Email: email}, nil
}

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) PingContext(context.Context) error { return m.err }

// compile-time interface checks
var (
	_ AuthServiceInterface  = (*mockAuthService)(nil)
	_ UserServiceInterface  = (*mockUserService)(nil)
	_ ListServiceInterface  = (*mockListService)(nil)
	_ MovieServiceInterface = (*mockMovieService)(nil)
	_ HealthChecker         = (*mockHealthChecker)(nil)
)
