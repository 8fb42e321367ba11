package book

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/entity"
	"presensi/backend/internal/pkg/repository/postgresql"
	"presensi/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context) ([]GetListResponse, error) {
	var list []GetListResponse

	rows, err := r.QueryContext(ctx, `
		SELECT
			id,
			title,
			author
		FROM books
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "selecting books")
	}
	defer rows.Close()

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Title,
			&detail.Author); err != nil {
			return nil, errors.Wrap(err, "scanning book list")
		}

		list = append(list, detail)
	}

	return list, rows.Err()
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	var detail GetDetailByIdResponse

	err := r.QueryRowContext(ctx, `
		SELECT
			id,
			title,
			author
		FROM books
		WHERE id = $1
	`, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Author,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, errors.Wrap(err, "selecting book detail")
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Title", "Author"); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	response.Title = request.Title
	response.Author = request.Author
	response.CreatedAt = time.Now()

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, errors.Wrap(err, "creating book")
	}

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "Title", "Author"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("books").Where("id = ?", request.ID)
	q.Set("title = ?", request.Title)
	q.Set("author = ?", request.Author)
	q.Set("updated_at = ?", time.Now())

	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "updating book")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	res, err := r.NewDelete().Model((*entity.Book)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "deleting book")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}
