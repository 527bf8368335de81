package service

import (
	"Emporium/internal/model"
	"Emporium/internal/repository"
	"context"
	"sort"
	"time"
)

// 内存版仓储实现，行为对齐 SQL 版的过滤与排序语义

type fakeProductRepo struct {
	products map[uint64]*model.Product
	nextID   uint64

	errGet          error
	errByIds        error
	errTop          error
	errSimilar      error
	errByCategories error
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uint64]*model.Product), nextID: 1}
	for _, p := range products {
		r.put(p)
	}
	return r
}

func (r *fakeProductRepo) put(p *model.Product) {
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.products[p.ID] = p
}

func (r *fakeProductRepo) CreateProduct(_ context.Context, product *model.Product) error {
	r.put(product)
	return nil
}

func (r *fakeProductRepo) GetProduct(_ context.Context, id uint64) (*model.Product, error) {
	if r.errGet != nil {
		return nil, r.errGet
	}
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetProductByIds(_ context.Context, ids []uint64) ([]*model.Product, error) {
	if r.errByIds != nil {
		return nil, r.errByIds
	}
	result := make([]*model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) ListProducts(_ context.Context, q repository.ProductQuery) ([]*model.Product, int64, error) {
	matched := make([]*model.Product, 0)
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if q.CategoryID != nil && p.CategoryID != *q.CategoryID {
			continue
		}
		if q.MinCents != nil && p.PriceCents < *q.MinCents {
			continue
		}
		if q.MaxCents != nil && p.PriceCents > *q.MaxCents {
			continue
		}
		matched = append(matched, p)
	}
	sortByScoreDesc(matched)

	total := int64(len(matched))
	start := (q.Page - 1) * q.PageSize
	if start >= len(matched) {
		return []*model.Product{}, total, nil
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeProductRepo) ListActiveIDs(_ context.Context) ([]uint64, error) {
	ids := make([]uint64, 0, len(r.products))
	for id, p := range r.products {
		if p.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeProductRepo) ListTopByPopularity(_ context.Context, limit int) ([]*model.Product, error) {
	if r.errTop != nil {
		return nil, r.errTop
	}
	matched := make([]*model.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsActive {
			matched = append(matched, p)
		}
	}
	sortByScoreDesc(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeProductRepo) ListSimilar(_ context.Context, categoryID, excludeID uint64, minCents, maxCents int64, limit int) ([]*model.Product, error) {
	if r.errSimilar != nil {
		return nil, r.errSimilar
	}
	matched := make([]*model.Product, 0)
	for _, p := range r.products {
		if !p.IsActive || p.CategoryID != categoryID || p.ID == excludeID {
			continue
		}
		if p.PriceCents < minCents || p.PriceCents > maxCents {
			continue
		}
		matched = append(matched, p)
	}
	sortByScoreDesc(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeProductRepo) ListByCategories(_ context.Context, categoryIDs []uint64, excludeIDs []uint64, limit int) ([]*model.Product, error) {
	if r.errByCategories != nil {
		return nil, r.errByCategories
	}
	categories := make(map[uint64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		categories[id] = struct{}{}
	}
	excluded := make(map[uint64]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	matched := make([]*model.Product, 0)
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if _, ok := categories[p.CategoryID]; !ok {
			continue
		}
		if _, ok := excluded[p.ID]; ok {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeProductRepo) UpdateProduct(_ context.Context, product *model.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdatePopularity(_ context.Context, id uint64, score float64, at time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	p.PopularityScore = score
	p.ScoreUpdatedAt = &at
	return nil
}

func (r *fakeProductRepo) IncrementCounter(_ context.Context, id uint64, column string) error {
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	switch column {
	case "view_count":
		p.ViewCount++
	case "cart_count":
		p.CartCount++
	case "favorite_count":
		p.FavoriteCount++
	case "order_count":
		p.OrderCount++
	}
	return nil
}

func (r *fakeProductRepo) DeactivateProduct(_ context.Context, id uint64) error {
	if p, ok := r.products[id]; ok {
		p.IsActive = false
	}
	return nil
}

func sortByScoreDesc(products []*model.Product) {
	sort.Slice(products, func(i, j int) bool {
		if products[i].PopularityScore != products[j].PopularityScore {
			return products[i].PopularityScore > products[j].PopularityScore
		}
		return products[i].ID < products[j].ID
	})
}

type fakeActivityRepo struct {
	activities []*model.UserActivity
	errCount   error
}

func (r *fakeActivityRepo) CreateActivity(_ context.Context, activity *model.UserActivity) error {
	r.activities = append(r.activities, activity)
	return nil
}

func (r *fakeActivityRepo) CountByProductSince(_ context.Context, since time.Time, limit int) ([]repository.ProductActivityCount, error) {
	if r.errCount != nil {
		return nil, r.errCount
	}
	totals := make(map[uint64]int64)
	for _, a := range r.activities {
		if !a.CreatedAt.Before(since) {
			totals[a.ProductID]++
		}
	}
	counts := make([]repository.ProductActivityCount, 0, len(totals))
	for id, total := range totals {
		counts = append(counts, repository.ProductActivityCount{ProductID: id, Total: total})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Total != counts[j].Total {
			return counts[i].Total > counts[j].Total
		}
		return counts[i].ProductID < counts[j].ProductID
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

type fakeInterestRepo struct {
	interests map[uint64]map[uint64]float64 // userID -> categoryID -> score
	errList   error
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: make(map[uint64]map[uint64]float64)}
}

func (r *fakeInterestRepo) ListUserInterests(_ context.Context, userID uint64) ([]*model.UserInterest, error) {
	if r.errList != nil {
		return nil, r.errList
	}
	result := make([]*model.UserInterest, 0, len(r.interests[userID]))
	for categoryID, score := range r.interests[userID] {
		result = append(result, &model.UserInterest{
			UserID:        userID,
			CategoryID:    categoryID,
			InterestScore: score,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].InterestScore != result[j].InterestScore {
			return result[i].InterestScore > result[j].InterestScore
		}
		return result[i].CategoryID < result[j].CategoryID
	})
	return result, nil
}

func (r *fakeInterestRepo) UpsertInterest(_ context.Context, userID, categoryID uint64, delta float64) error {
	if r.interests[userID] == nil {
		r.interests[userID] = make(map[uint64]float64)
	}
	r.interests[userID][categoryID] += delta
	return nil
}

type fakeOrderRepo struct {
	purchased map[uint64][]uint64 // userID -> productIDs
	errList   error
}

func (r *fakeOrderRepo) ListPurchasedProductIDs(_ context.Context, userID uint64) ([]uint64, error) {
	if r.errList != nil {
		return nil, r.errList
	}
	return r.purchased[userID], nil
}
