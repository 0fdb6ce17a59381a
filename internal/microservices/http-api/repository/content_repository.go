package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// rankedColumns annotates each content row with its highest and mean rating.
// Unrated content gets 0 for both, so it sorts after anything rated.
const rankedColumns = "content.*, " +
	"COALESCE(MAX(ratings.rating_value), 0) AS top_rating, " +
	"COALESCE(AVG(ratings.rating_value), 0) AS average_rating"

// ContentFilter narrows a browse query. Zero values mean "no filter".
type ContentFilter struct {
	Genre       models.Genre
	Language    models.Language
	ContentType models.ContentType
	Search      string
	Sort        string
	Page        int
	PageSize    int
}

// sortOrders whitelists the orderings clients may request.
var sortOrders = map[string]string{
	"":              "content.created_at DESC, content.id DESC",
	"-created_at":   "content.created_at DESC, content.id DESC",
	"created_at":    "content.created_at ASC, content.id ASC",
	"title":         "content.title ASC, content.id ASC",
	"-title":        "content.title DESC, content.id DESC",
	"release_date":  "content.release_date ASC, content.id ASC",
	"-release_date": "content.release_date DESC, content.id DESC",
	"-avg_rating":   "average_rating DESC, content.id ASC",
}

// ValidSort reports whether s is an accepted sort key.
func ValidSort(s string) bool {
	_, ok := sortOrders[s]
	return ok
}

type ContentRepository interface {
	Create(ctx context.Context, c *models.Content) error
	Update(ctx context.Context, c *models.Content, ott *models.ContentOTT) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	List(ctx context.Context, f ContentFilter) ([]models.RankedContent, int64, error)
	RankedCandidates(ctx context.Context, genre models.Genre, excludeIDs []int64, limit int) ([]models.RankedContent, error)
	Trending(ctx context.Context, limit int) ([]models.RankedContent, error)
	Recent(ctx context.Context, limit int) ([]models.Content, error)
	Similar(ctx context.Context, c *models.Content, limit int) ([]models.RankedContent, error)
	GenreCounts(ctx context.Context, limit int) ([]models.GenreCount, error)
	ListStreaming(ctx context.Context, platform models.OTTPlatform, freeOnly bool) ([]models.Content, error)
	AverageRating(ctx context.Context, id int64) (float64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Create inserts the content together with any OTT rows attached to it.
func (r *contentRepository) Create(ctx context.Context, c *models.Content) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create content: %w", ErrDuplicate)
		}
		return fmt.Errorf("create content: %w", err)
	}
	// GORM will populate c.ID and c.CreatedAt
	return nil
}

// Update saves the content columns and replaces its OTT entry. A nil ott
// clears any existing entry.
func (r *contentRepository) Update(ctx context.Context, c *models.Content, ott *models.ContentOTT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("OTTPlatforms", "created_at").Save(c).Error; err != nil {
			return fmt.Errorf("update content: %w", err)
		}
		if err := tx.Where("content_id = ?", c.ID).Delete(&models.ContentOTT{}).Error; err != nil {
			return fmt.Errorf("clear ott entries: %w", err)
		}
		c.OTTPlatforms = nil
		if ott != nil {
			ott.ID = 0
			ott.ContentID = c.ID
			if err := tx.Create(ott).Error; err != nil {
				return fmt.Errorf("create ott entry: %w", err)
			}
			c.OTTPlatforms = []models.ContentOTT{*ott}
		}
		return nil
	})
}

func (r *contentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Content{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	var c models.Content
	if err := r.db.WithContext(ctx).Preload("OTTPlatforms").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ranked starts a query over content joined to its ratings, grouped per content row.
func (r *contentRepository) ranked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Content{}).
		Select(rankedColumns).
		Joins("LEFT JOIN ratings ON ratings.content_id = content.id").
		Group("content.id")
}

// List applies the browse filters, counts the full match and returns one page.
func (r *contentRepository) List(ctx context.Context, f ContentFilter) ([]models.RankedContent, int64, error) {
	var total int64
	if err := applyContentFilter(r.db.WithContext(ctx).Model(&models.Content{}), f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count content: %w", err)
	}

	order, ok := sortOrders[f.Sort]
	if !ok {
		order = sortOrders[""]
	}

	limit, offset := paginate(f.Page, f.PageSize)
	var list []models.RankedContent
	err := applyContentFilter(r.ranked(ctx), f).
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list content: %w", err)
	}
	return list, total, nil
}

// applyContentFilter adds the WHERE clauses of f. Search requires every
// whitespace-separated token to appear in the title, description or cast.
func applyContentFilter(db *gorm.DB, f ContentFilter) *gorm.DB {
	if f.Genre != "" {
		db = db.Where("content.genre = ?", f.Genre)
	}
	if f.Language != "" {
		db = db.Where("content.language = ?", f.Language)
	}
	if f.ContentType != "" {
		db = db.Where("content.content_type = ?", f.ContentType)
	}
	for _, t := range strings.Fields(f.Search) {
		p := "%" + t + "%"
		// use COALESCE to avoid NULL cast causing ILIKE failure
		db = db.Where("(content.title ILIKE ? OR content.description ILIKE ? OR COALESCE(content.\"cast\",'') ILIKE ?)", p, p, p)
	}
	return db
}

// RankedCandidates returns up to limit contents ordered by (top rating desc, id asc).
// An empty genre means any genre. excludeIDs may be empty.
func (r *contentRepository) RankedCandidates(ctx context.Context, genre models.Genre, excludeIDs []int64, limit int) ([]models.RankedContent, error) {
	if limit <= 0 {
		return []models.RankedContent{}, nil
	}

	query := r.ranked(ctx)
	if genre != "" {
		query = query.Where("content.genre = ?", genre)
	}
	// NOT IN () is invalid SQL, so an empty exclusion list adds no clause
	if len(excludeIDs) > 0 {
		query = query.Where("content.id NOT IN ?", excludeIDs)
	}

	var list []models.RankedContent
	if err := query.Order("top_rating DESC, content.id ASC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("ranked candidates: %w", err)
	}
	return list, nil
}

// Trending orders by mean rating, best first.
func (r *contentRepository) Trending(ctx context.Context, limit int) ([]models.RankedContent, error) {
	var list []models.RankedContent
	if err := r.ranked(ctx).Order("average_rating DESC, content.id ASC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("trending content: %w", err)
	}
	return list, nil
}

func (r *contentRepository) Recent(ctx context.Context, limit int) ([]models.Content, error) {
	var list []models.Content
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recent content: %w", err)
	}
	return list, nil
}

// Similar returns other contents of the same genre, best rated first.
func (r *contentRepository) Similar(ctx context.Context, c *models.Content, limit int) ([]models.RankedContent, error) {
	var list []models.RankedContent
	err := r.ranked(ctx).
		Where("content.genre = ? AND content.id <> ?", c.Genre, c.ID).
		Order("average_rating DESC, content.id ASC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("similar content: %w", err)
	}
	return list, nil
}

// GenreCounts returns the most populated genres, ties broken by name.
func (r *contentRepository) GenreCounts(ctx context.Context, limit int) ([]models.GenreCount, error) {
	var counts []models.GenreCount
	err := r.db.WithContext(ctx).
		Model(&models.Content{}).
		Select("genre, COUNT(*) AS count").
		Group("genre").
		Order("count DESC, genre ASC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("genre counts: %w", err)
	}
	return counts, nil
}

// ListStreaming returns content available on at least one OTT platform.
// An empty platform matches any platform.
func (r *contentRepository) ListStreaming(ctx context.Context, platform models.OTTPlatform, freeOnly bool) ([]models.Content, error) {
	sub := r.db.Model(&models.ContentOTT{}).Select("content_id")
	if platform != "" {
		sub = sub.Where("platform_name = ?", platform)
	}
	if freeOnly {
		sub = sub.Where("is_free = ?", true)
	}

	var list []models.Content
	err := r.db.WithContext(ctx).
		Preload("OTTPlatforms").
		Where("id IN (?)", sub).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list streaming content: %w", err)
	}
	return list, nil
}

func (r *contentRepository) AverageRating(ctx context.Context, id int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating_value), 0) as average").
		Where("content_id = ?", id).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *contentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Content{}).Count(&count).Error
	return count, err
}

func (r *contentRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Content{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
