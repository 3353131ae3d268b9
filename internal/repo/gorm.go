package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

var (
	_ ProductRepo = (*GormRepo)(nil)
	_ UserRepo    = (*GormRepo)(nil)
)

// GormRepo stores both collections through gorm. Rows are listed by rank, highest first,
// and every insert takes the next rank so new records come out on top.
type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&models.Product{}, &models.User{})
}

// Seed inserts the records keeping their slice order as list order.
func (r *GormRepo) Seed(ctx context.Context, products []models.Product, users []models.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			p := products[i]
			p.Rank = int64(len(products) - i)
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		for i := range users {
			u := users[i]
			u.Rank = int64(len(users) - i)
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func nextRank(tx *gorm.DB, model any) (int64, error) {
	var top int64
	if err := tx.Model(model).Select("COALESCE(MAX(list_rank), 0)").Scan(&top).Error; err != nil {
		return 0, err
	}
	return top + 1, nil
}

func rowExists(tx *gorm.DB, model any, id string) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, filters transport.ProductFilters) ([]models.Product, error) {
	f := filters.Normalize()
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		q = q.Where("instr(lower(name), ?) > 0 OR instr(lower(description), ?) > 0", term, term)
	}

	items := make([]models.Product, 0)
	if err := q.Order("list_rank DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productNotFound()
		}
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists := func(id string) (bool, error) { return rowExists(tx, &models.Product{}, id) }
		taken := prod.ID == ""
		if !taken {
			var err error
			if taken, err = exists(prod.ID); err != nil {
				return err
			}
		}
		if taken {
			id, err := uniqueID(exists)
			if err != nil {
				return err
			}
			prod.ID = id
		}

		rank, err := nextRank(tx, &models.Product{})
		if err != nil {
			return err
		}
		prod.Rank = rank
		return tx.Create(prod).Error
	})
	if err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (*models.Product, error) {
	var prod models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&prod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return productNotFound()
			}
			return err
		}

		applyProductPatch(&prod, req)

		res := tx.Model(&prod).Where("id = ?", id).Select("*").Updates(&prod)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return productNotFound()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return productNotFound()
	}
	return nil
}

func (r *GormRepo) ListUsers(ctx context.Context, filters transport.UserFilters) ([]models.User, error) {
	f := filters.Normalize()
	q := r.DB.WithContext(ctx).Model(&models.User{})
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		q = q.Where(
			"instr(lower(full_name), ?) > 0 OR instr(lower(email), ?) > 0 OR instr(lower(department), ?) > 0",
			term, term, term,
		)
	}

	items := make([]models.User, 0)
	if err := q.Order("list_rank DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound()
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists := func(id string) (bool, error) { return rowExists(tx, &models.User{}, id) }
		taken := user.ID == ""
		if !taken {
			var err error
			if taken, err = exists(user.ID); err != nil {
				return err
			}
		}
		if taken {
			id, err := uniqueID(exists)
			if err != nil {
				return err
			}
			user.ID = id
		}

		rank, err := nextRank(tx, &models.User{})
		if err != nil {
			return err
		}
		user.Rank = rank
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *GormRepo) PatchUser(ctx context.Context, req transport.PatchUserRequest, id string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userNotFound()
			}
			return err
		}

		applyUserPatch(&user, req)

		res := tx.Model(&user).Where("id = ?", id).Select("*").Updates(&user)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return userNotFound()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return userNotFound()
	}
	return nil
}
