package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/repository"
)

// In-memory repositories backing the service tests. They mirror the
// storage contracts: lookups return (nil, nil) on miss, and the review
// store enforces the one-review-per-author constraint the way the
// database unique index does.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.User
	for _, u := range f.users {
		cp := *u
		all = append(all, &cp)
	}
	return paginate(all, limit, offset), nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category // keyed by slug
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if _, ok := f.categories[category.Slug]; ok {
		return repository.ErrSlugTaken
	}
	cp := *category
	f.categories[category.Slug] = &cp
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	if c, ok := f.categories[slug]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	var all []*entity.Category
	for _, c := range f.categories {
		if search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			cp := *c
			all = append(all, &cp)
		}
	}
	return paginate(all, limit, offset), nil
}

func (f *fakeCategoryRepo) CountAll(_ context.Context, search string) (int64, error) {
	matches, _ := f.FindAll(context.Background(), search, len(f.categories)+1, 0)
	return int64(len(matches)), nil
}

func (f *fakeCategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	delete(f.categories, slug)
	return nil
}

type fakeGenreRepo struct {
	genres      map[string]*entity.Genre // keyed by slug
	titleGenres *fakeTitleGenreRepo
}

func newFakeGenreRepo(tg *fakeTitleGenreRepo) *fakeGenreRepo {
	return &fakeGenreRepo{genres: make(map[string]*entity.Genre), titleGenres: tg}
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	if _, ok := f.genres[genre.Slug]; ok {
		return repository.ErrSlugTaken
	}
	cp := *genre
	f.genres[genre.Slug] = &cp
	return nil
}

func (f *fakeGenreRepo) FindBySlug(_ context.Context, slug string) (*entity.Genre, error) {
	if g, ok := f.genres[slug]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindBySlugs(_ context.Context, slugs []string) ([]*entity.Genre, error) {
	var found []*entity.Genre
	for _, slug := range slugs {
		if g, ok := f.genres[slug]; ok {
			cp := *g
			found = append(found, &cp)
		}
	}
	return found, nil
}

func (f *fakeGenreRepo) FindByTitleID(_ context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	var found []*entity.Genre
	for _, tg := range f.titleGenres.rows {
		if tg.TitleID != titleID {
			continue
		}
		for _, g := range f.genres {
			if g.ID == tg.GenreID {
				cp := *g
				found = append(found, &cp)
			}
		}
	}
	return found, nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	var all []*entity.Genre
	for _, g := range f.genres {
		if search == "" || strings.Contains(strings.ToLower(g.Name), strings.ToLower(search)) {
			cp := *g
			all = append(all, &cp)
		}
	}
	return paginate(all, limit, offset), nil
}

func (f *fakeGenreRepo) CountAll(_ context.Context, search string) (int64, error) {
	matches, _ := f.FindAll(context.Background(), search, len(f.genres)+1, 0)
	return int64(len(matches)), nil
}

func (f *fakeGenreRepo) DeleteBySlug(_ context.Context, slug string) error {
	delete(f.genres, slug)
	return nil
}

type fakeTitleRepo struct {
	titles     map[uuid.UUID]*entity.Title
	reviews    *fakeReviewRepo
	categories *fakeCategoryRepo
	genres     *fakeGenreRepo
}

func newFakeTitleRepo(reviews *fakeReviewRepo, categories *fakeCategoryRepo, genres *fakeGenreRepo) *fakeTitleRepo {
	return &fakeTitleRepo{
		titles:     make(map[uuid.UUID]*entity.Title),
		reviews:    reviews,
		categories: categories,
		genres:     genres,
	}
}

func (f *fakeTitleRepo) Create(_ context.Context, title *entity.Title) error {
	cp := *title
	f.titles[title.ID] = &cp
	return nil
}

// rating recomputes the average score the way the storage query does.
func (f *fakeTitleRepo) rating(titleID uuid.UUID) *float64 {
	var sum, n int
	for _, r := range f.reviews.reviews {
		if r.TitleID == titleID {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}

func (f *fakeTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Title, error) {
	if t, ok := f.titles[id]; ok {
		cp := *t
		cp.Rating = f.rating(id)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTitleRepo) FindAll(_ context.Context, filter repository.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	var all []*entity.Title
	for _, t := range f.titles {
		if filter.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Year != nil && t.Year != *filter.Year {
			continue
		}
		if filter.CategorySlug != "" && !f.inCategory(t, filter.CategorySlug) {
			continue
		}
		if filter.GenreSlug != "" && !f.hasGenre(t.ID, filter.GenreSlug) {
			continue
		}
		cp := *t
		cp.Rating = f.rating(t.ID)
		all = append(all, &cp)
	}
	return paginate(all, limit, offset), nil
}

func (f *fakeTitleRepo) inCategory(t *entity.Title, slug string) bool {
	c, ok := f.categories.categories[slug]
	if !ok || t.CategoryID == nil {
		return false
	}
	return *t.CategoryID == c.ID
}

func (f *fakeTitleRepo) hasGenre(titleID uuid.UUID, slug string) bool {
	g, ok := f.genres.genres[slug]
	if !ok {
		return false
	}
	for _, tg := range f.genres.titleGenres.rows {
		if tg.TitleID == titleID && tg.GenreID == g.ID {
			return true
		}
	}
	return false
}

func (f *fakeTitleRepo) CountAll(ctx context.Context, filter repository.TitleFilter) (int64, error) {
	matches, _ := f.FindAll(ctx, filter, len(f.titles)+1, 0)
	return int64(len(matches)), nil
}

func (f *fakeTitleRepo) Update(_ context.Context, title *entity.Title) error {
	cp := *title
	f.titles[title.ID] = &cp
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.titles, id)
	return nil
}

type fakeTitleGenreRepo struct {
	rows []*entity.TitleGenre
}

func newFakeTitleGenreRepo() *fakeTitleGenreRepo {
	return &fakeTitleGenreRepo{}
}

func (f *fakeTitleGenreRepo) CreateBatch(_ context.Context, titleGenres []*entity.TitleGenre) error {
	for _, tg := range titleGenres {
		cp := *tg
		f.rows = append(f.rows, &cp)
	}
	return nil
}

func (f *fakeTitleGenreRepo) DeleteByTitleID(_ context.Context, titleID uuid.UUID) error {
	kept := f.rows[:0]
	for _, tg := range f.rows {
		if tg.TitleID != titleID {
			kept = append(kept, tg)
		}
	}
	f.rows = kept
	return nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, r := range f.reviews {
		if r.TitleID == review.TitleID && r.AuthorID == review.AuthorID {
			return repository.ErrDuplicateReview
		}
	}
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	if r, ok := f.reviews[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleID(_ context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	var all []*entity.Review
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			cp := *r
			all = append(all, &cp)
		}
	}
	return paginate(all, limit, offset), nil
}

func (f *fakeReviewRepo) CountByTitleID(_ context.Context, titleID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	if c, ok := f.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindByReviewID(_ context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	var all []*entity.Comment
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			cp := *c
			all = append(all, &cp)
		}
	}
	return paginate(all, limit, offset), nil
}

func (f *fakeCommentRepo) CountByReviewID(_ context.Context, reviewID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.comments, id)
	return nil
}

// fakeMailer records outgoing mail for assertions.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []sentMail
	notify chan struct{}
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{notify: make(chan struct{}, 16)}
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	select {
	case m.notify <- struct{}{}:
	default:
	}
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func newTestRepository() *repository.Repository {
	reviews := newFakeReviewRepo()
	titleGenres := newFakeTitleGenreRepo()
	categories := newFakeCategoryRepo()
	genres := newFakeGenreRepo(titleGenres)
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Category:   categories,
		Genre:      genres,
		Title:      newFakeTitleRepo(reviews, categories, genres),
		TitleGenre: titleGenres,
		Review:     reviews,
		Comment:    newFakeCommentRepo(),
	}
}
