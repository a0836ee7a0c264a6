package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) WithTx(tx *gorm.DB) *BoardRepository {
	return &BoardRepository{db: tx}
}

// Create 게시글과 재료 연결, 조리 단계를 함께 저장
func (r *BoardRepository) Create(board *model.Board) error {
	return r.db.Create(board).Error
}

func (r *BoardRepository) GetByID(id int64) (*model.Board, error) {
	var board model.Board
	err := r.db.Where("id = ?", id).First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetDetail 작성자, 재료, 조리 단계 포함
func (r *BoardRepository) GetDetail(id int64) (*model.Board, error) {
	var board model.Board
	err := r.db.
		Preload("User").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Descriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("step ASC")
		}).
		Where("id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateContent 본문과 재료/단계 교체. 카운터 컬럼은 건드리지 않는다.
func (r *BoardRepository) UpdateContent(board *model.Board, links []*model.RecipeIngredient, descriptions []*model.Description) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Board{}).Where("id = ?", board.ID).
			Omit(clause.Associations).
			Select("title", "description", "dish_time", "dish_level", "dish_category",
				"main_image_id", "main_image_url", "ingredient_path", "updated_at").
			Updates(board).Error
		if err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", board.ID).Delete(&model.Description{}).Error; err != nil {
			return err
		}

		for _, l := range links {
			l.ID = 0
			l.BoardID = board.ID
		}
		for _, d := range descriptions {
			d.ID = 0
			d.BoardID = board.ID
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		if len(descriptions) > 0 {
			if err := tx.Create(&descriptions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 게시글과 딸린 행 모두 삭제
func (r *BoardRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&model.Comment{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&model.CommentUserEvent{}).Error; err != nil {
			return err
		}

		for _, m := range []interface{}{
			&model.Comment{},
			&model.BoardUserEvent{},
			&model.RecipeIngredient{},
			&model.Description{},
		} {
			if err := tx.Where("board_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Board{}, id).Error
	})
}

// IncrementCount 조회수(count) 증가
func (r *BoardRepository) IncrementCount(id int64) error {
	return r.db.Model(&model.Board{}).Where("id = ?", id).
		UpdateColumn("count", gorm.Expr("count + 1")).Error
}

// AddStar 별점 추가 후 평균(total_star) 재계산
func (r *BoardRepository) AddStar(id int64, star int) error {
	return r.adjustStar(r.db, id, int64(star), 1)
}

// RemoveStar 댓글 삭제 시 별점 회수
func (r *BoardRepository) RemoveStar(id int64, star int) error {
	return r.adjustStar(r.db, id, -int64(star), -1)
}

func (r *BoardRepository) adjustStar(db *gorm.DB, id, sumDelta, countDelta int64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Board{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
			"star_sum":   gorm.Expr("star_sum + ?", sumDelta),
			"star_count": gorm.Expr("star_count + ?", countDelta),
		}).Error
		if err != nil {
			return err
		}

		// 별도 문장으로 계산해 DB 별 SET 평가 순서 차이를 피한다
		return tx.Model(&model.Board{}).Where("id = ?", id).
			UpdateColumn("total_star", gorm.Expr("CASE WHEN star_count > 0 THEN star_sum * 1.0 / star_count ELSE 0 END")).Error
	})
}

// IngredientLinks 게시글별 연결된 재료 이름 (IN 쿼리 한 번)
func (r *BoardRepository) IngredientLinks(ctx context.Context, boardIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string)
	if len(boardIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		BoardID int64
		Name    string
	}
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.board_id, ingredients.name").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.board_id IN ?", boardIDs).
		Order("recipe_ingredients.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.BoardID] = append(result[row.BoardID], row.Name)
	}
	return result, nil
}
