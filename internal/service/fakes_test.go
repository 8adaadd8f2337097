package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users []*entities.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", len(f.users)+1),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCategoryRepo struct {
	categories []*entities.Category
	err        error
}

func (f *fakeCategoryRepo) add(userID, name, color, icon string) *entities.Category {
	category := &entities.Category{
		ID:        fmt.Sprintf("cat-%d", len(f.categories)+1),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.categories = append(f.categories, category)
	return category
}

func (f *fakeCategoryRepo) Create(_ context.Context, userID, name, color, icon string) (*entities.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.add(userID, name, color, icon), nil
}

func (f *fakeCategoryRepo) CreateBatch(_ context.Context, userID string, seeds []repository.CategorySeed) error {
	if f.err != nil {
		return f.err
	}
	for _, seed := range seeds {
		f.add(userID, seed.Name, seed.Color, seed.Icon)
	}
	return nil
}

func (f *fakeCategoryRepo) GetByUserID(_ context.Context, userID string) ([]*entities.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.Category
	for _, c := range f.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id, userID string) (*entities.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, userID, name string) (*entities.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.UserID == userID && c.Name == name {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id, userID string) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.categories {
		if c.ID == id && c.UserID == userID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeTransactionRepo struct {
	transactions []*entities.Transaction
	categoryRepo *fakeCategoryRepo
	err          error
}

func (f *fakeTransactionRepo) categoryRef(id string) entities.CategoryRef {
	if f.categoryRepo != nil {
		for _, c := range f.categoryRepo.categories {
			if c.ID == id {
				return entities.CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
			}
		}
	}
	return entities.CategoryRef{ID: id}
}

func (f *fakeTransactionRepo) detail(t *entities.Transaction) *entities.TransactionDetail {
	return &entities.TransactionDetail{
		ID:          t.ID,
		Amount:      t.Amount,
		Description: t.Description,
		Type:        t.Type,
		Category:    f.categoryRef(t.CategoryID),
		Date:        t.Date,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *t
	created.ID = fmt.Sprintf("tx-%d", len(f.transactions)+1)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.transactions = append(f.transactions, &created)
	return &created, nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id, userID string) (*entities.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.transactions {
		if t.ID == id && t.UserID == userID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTransactionRepo) FindDetailByID(ctx context.Context, id, userID string) (*entities.TransactionDetail, error) {
	t, err := f.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return f.detail(t), nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, t *entities.Transaction) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.transactions {
		if existing.ID == t.ID && existing.UserID == t.UserID {
			updated := *t
			updated.UpdatedAt = time.Now()
			f.transactions[i] = &updated
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id, userID string) error {
	if f.err != nil {
		return f.err
	}
	for i, t := range f.transactions {
		if t.ID == id && t.UserID == userID {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func matchesFilter(t *entities.Transaction, filter repository.TransactionFilter) bool {
	if filter.Type != "" && t.Type != filter.Type {
		return false
	}
	if filter.CategoryID != "" && t.CategoryID != filter.CategoryID {
		return false
	}
	if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
		return false
	}
	return true
}

func inWindow(t *entities.Transaction, start, end time.Time) bool {
	return !t.Date.Before(start) && !t.Date.After(end)
}

func (f *fakeTransactionRepo) List(_ context.Context, userID string, filter repository.TransactionFilter, offset, limit int) ([]*entities.TransactionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entities.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID && matchesFilter(t, filter) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}

	var out []*entities.TransactionDetail
	for _, t := range matched {
		out = append(out, f.detail(t))
	}
	return out, nil
}

func (f *fakeTransactionRepo) Count(_ context.Context, userID string, filter repository.TransactionFilter) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, t := range f.transactions {
		if t.UserID == userID && matchesFilter(t, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionRepo) CountByCategory(_ context.Context, userID, categoryID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, t := range f.transactions {
		if t.UserID == userID && t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionRepo) SumByType(_ context.Context, userID, txType string, start, end time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	total := 0.0
	for _, t := range f.transactions {
		if t.UserID == userID && t.Type == txType && inWindow(t, start, end) {
			total += t.Amount
		}
	}
	return total, nil
}

func (f *fakeTransactionRepo) CountInWindow(_ context.Context, userID string, start, end time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, t := range f.transactions {
		if t.UserID == userID && inWindow(t, start, end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionRepo) ExpensesByCategory(_ context.Context, userID string, start, end time.Time) ([]*entities.CategoryExpense, error) {
	if f.err != nil {
		return nil, f.err
	}
	grouped := make(map[string]*entities.CategoryExpense)
	for _, t := range f.transactions {
		if t.UserID != userID || t.Type != entities.TypeExpense || !inWindow(t, start, end) {
			continue
		}
		row, ok := grouped[t.CategoryID]
		if !ok {
			ref := f.categoryRef(t.CategoryID)
			row = &entities.CategoryExpense{CategoryID: ref.ID, Name: ref.Name, Color: ref.Color}
			grouped[t.CategoryID] = row
		}
		row.Total += t.Amount
		row.Count++
	}

	var out []*entities.CategoryExpense
	for _, row := range grouped {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}

func (f *fakeTransactionRepo) MonthlyTrends(_ context.Context, userID string, start, end time.Time) ([]*entities.MonthlyTrend, error) {
	if f.err != nil {
		return nil, f.err
	}
	type key struct {
		year, month int
		txType      string
	}
	grouped := make(map[key]float64)
	for _, t := range f.transactions {
		if t.UserID != userID || !inWindow(t, start, end) {
			continue
		}
		grouped[key{t.Date.Year(), int(t.Date.Month()), t.Type}] += t.Amount
	}

	var out []*entities.MonthlyTrend
	for k, total := range grouped {
		out = append(out, &entities.MonthlyTrend{Year: k.year, Month: k.month, Type: k.txType, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (f *fakeTransactionRepo) Recent(_ context.Context, userID string, start, end time.Time, limit int) ([]*entities.TransactionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entities.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID && inWindow(t, start, end) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })
	if limit < len(matched) {
		matched = matched[:limit]
	}

	var out []*entities.TransactionDetail
	for _, t := range matched {
		out = append(out, f.detail(t))
	}
	return out, nil
}
