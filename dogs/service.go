package dogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/dogadopt-go/apperror"
	"github.com/user/dogadopt-go/pagination"
	"github.com/user/dogadopt-go/users"
)

// UserDirectory resolves user ids to public views for response construction.
// Implemented by users.Service.
type UserDirectory interface {
	ByID(ctx context.Context, id int) (*users.PublicUser, error)
	ByIDs(ctx context.Context, ids []int) (map[int]users.PublicUser, error)
}

// Service is the dog registry: creation, the adoption transition, removal,
// and the two listings.
type Service interface {
	Register(ctx context.Context, ownerID int, req RegisterDogRequest) (*RegisterDogResponse, error)
	Adopt(ctx context.Context, dogID string, adopterID int, req AdoptDogRequest) (*AdoptDogResponse, error)
	Remove(ctx context.Context, dogID string, requesterID int) (*RemoveDogResponse, error)
	ListRegistered(ctx context.Context, ownerID int, statusFilter string, p pagination.Params) (*RegisteredDogsResponse, error)
	ListAdopted(ctx context.Context, adopterID int, p pagination.Params) (*AdoptedDogsResponse, error)
}

type service struct {
	db      *pgxpool.Pool
	userDir UserDirectory
}

// NewService creates the pgx-backed dog registry.
func NewService(db *pgxpool.Pool, userDir UserDirectory) Service {
	return &service{db: db, userDir: userDir}
}

// Register creates a dog record listed for adoption, owned by ownerID.
func (s *service) Register(ctx context.Context, ownerID int, req RegisterDogRequest) (*RegisterDogResponse, error) {
	name, description, err := validateRegisterDog(req)
	if err != nil {
		return nil, err
	}

	dog := Dog{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		Status:      StatusAvailable,
	}

	query := `INSERT INTO dogs (id, name, description, owner_id, status)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`
	err = s.db.QueryRow(ctx, query, dog.ID, dog.Name, dog.Description, dog.OwnerID, dog.Status).Scan(&dog.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("Dog registration failed", err)
	}

	return &RegisterDogResponse{
		Message: "Dog registered successfully",
		Dog: NewDogView{
			ID:          dog.ID.String(),
			Name:        dog.Name,
			Description: dog.Description,
			Status:      dog.Status,
			CreatedAt:   dog.CreatedAt,
		},
	}, nil
}

// Adopt moves a dog from available to adopted on behalf of adopterID.
// The transition itself is a single conditional update keyed on the current
// status, so when two adopters race, exactly one update matches and the
// loser observes the already-adopted conflict.
func (s *service) Adopt(ctx context.Context, dogID string, adopterID int, req AdoptDogRequest) (*AdoptDogResponse, error) {
	id, err := uuid.Parse(dogID)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid dog ID", nil)
	}

	message, err := validateAdoptionMessage(req.ThankYouMessage)
	if err != nil {
		return nil, err
	}

	var dog Dog
	dog.ID = id
	query := `SELECT name, description, owner_id, status FROM dogs WHERE id = $1`
	err = s.db.QueryRow(ctx, query, id).Scan(&dog.Name, &dog.Description, &dog.OwnerID, &dog.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Dog not found", nil)
		}
		return nil, apperror.NewDatabaseError("Dog adoption failed", err)
	}

	if dog.Status == StatusAdopted {
		return nil, apperror.NewBadRequestError("Dog is already adopted", nil)
	}
	if dog.OwnerID == adopterID {
		return nil, apperror.NewBadRequestError("You cannot adopt your own dog", nil)
	}

	update := `UPDATE dogs
	           SET status = $2, adopter_id = $3, adoption_message = $4, adoption_date = now()
	           WHERE id = $1 AND status = $5
	           RETURNING adoption_date`
	err = s.db.QueryRow(ctx, update, id, StatusAdopted, adopterID, message, StatusAvailable).Scan(&dog.AdoptionDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Another adopter won the race between our read and this update.
			return nil, apperror.NewBadRequestError("Dog is already adopted", nil)
		}
		return nil, apperror.NewDatabaseError("Dog adoption failed", err)
	}

	owner, err := s.userDir.ByID(ctx, dog.OwnerID)
	if err != nil {
		return nil, err
	}

	return &AdoptDogResponse{
		Message: "Dog adopted successfully",
		Dog: AdoptedDogView{
			ID:              dog.ID.String(),
			Name:            dog.Name,
			Description:     dog.Description,
			Status:          StatusAdopted,
			Owner:           owner.Username,
			AdoptionMessage: message,
			AdoptionDate:    dog.AdoptionDate,
		},
	}, nil
}

// Remove deletes a dog record. Ownership is checked before adoption status:
// a non-owner gets the forbidden error even when the dog is adopted, and the
// rightful owner of an adopted dog gets the cannot-remove conflict.
func (s *service) Remove(ctx context.Context, dogID string, requesterID int) (*RemoveDogResponse, error) {
	id, err := uuid.Parse(dogID)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid dog ID", nil)
	}

	var ownerID int
	var status Status
	query := `SELECT owner_id, status FROM dogs WHERE id = $1`
	err = s.db.QueryRow(ctx, query, id).Scan(&ownerID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Dog not found", nil)
		}
		return nil, apperror.NewDatabaseError("Dog removal failed", err)
	}

	if ownerID != requesterID {
		return nil, apperror.NewForbiddenError("You can only remove dogs you registered", nil)
	}
	if status == StatusAdopted {
		return nil, apperror.NewBadRequestError("Cannot remove adopted dog", nil)
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id); err != nil {
		return nil, apperror.NewDatabaseError("Dog removal failed", err)
	}

	return &RemoveDogResponse{Message: "Dog removed successfully"}, nil
}

// ListRegistered returns the owner's dogs, newest first, optionally filtered
// by status. An unrecognized status filter is ignored rather than rejected.
func (s *service) ListRegistered(ctx context.Context, ownerID int, statusFilter string, p pagination.Params) (*RegisteredDogsResponse, error) {
	where := `WHERE owner_id = $1`
	args := []interface{}{ownerID}
	if statusFilter == string(StatusAvailable) || statusFilter == string(StatusAdopted) {
		where += ` AND status = $2`
		args = append(args, statusFilter)
	}

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM dogs `+where, args...).Scan(&total); err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch registered dogs", err)
	}

	query := `SELECT id, name, description, status, adopter_id, adoption_message, adoption_date, created_at
	          FROM dogs ` + where + `
	          ORDER BY created_at DESC
	          LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, p.Limit, p.Offset())

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch registered dogs", err)
	}
	defer rows.Close()

	var dogList []Dog
	for rows.Next() {
		var dog Dog
		if err := rows.Scan(&dog.ID, &dog.Name, &dog.Description, &dog.Status,
			&dog.AdopterID, &dog.AdoptionMessage, &dog.AdoptionDate, &dog.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("Failed to fetch registered dogs", err)
		}
		dogList = append(dogList, dog)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch registered dogs", err)
	}

	adopters, err := s.resolveAdopters(ctx, dogList)
	if err != nil {
		return nil, err
	}

	items := make([]OwnedDogItem, 0, len(dogList))
	for _, dog := range dogList {
		item := OwnedDogItem{
			ID:              dog.ID.String(),
			Name:            dog.Name,
			Description:     dog.Description,
			Status:          dog.Status,
			AdoptionMessage: dog.AdoptionMessage,
			AdoptionDate:    dog.AdoptionDate,
			CreatedAt:       dog.CreatedAt,
		}
		if dog.AdopterID != nil {
			if adopter, ok := adopters[*dog.AdopterID]; ok {
				username := adopter.Username
				item.Adopter = &username
			}
		}
		items = append(items, item)
	}

	return &RegisteredDogsResponse{
		Dogs:       items,
		Pagination: pagination.NewMeta(p, total),
	}, nil
}

// ListAdopted returns the dogs the user has adopted, most recent adoption
// first, with the original owner's username resolved on each entry.
func (s *service) ListAdopted(ctx context.Context, adopterID int, p pagination.Params) (*AdoptedDogsResponse, error) {
	var total int
	countQuery := `SELECT count(*) FROM dogs WHERE adopter_id = $1 AND status = $2`
	if err := s.db.QueryRow(ctx, countQuery, adopterID, StatusAdopted).Scan(&total); err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch adopted dogs", err)
	}

	query := `SELECT id, name, description, owner_id, adoption_message, adoption_date
	          FROM dogs
	          WHERE adopter_id = $1 AND status = $2
	          ORDER BY adoption_date DESC
	          LIMIT $3 OFFSET $4`
	rows, err := s.db.Query(ctx, query, adopterID, StatusAdopted, p.Limit, p.Offset())
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch adopted dogs", err)
	}
	defer rows.Close()

	var dogList []Dog
	for rows.Next() {
		var dog Dog
		if err := rows.Scan(&dog.ID, &dog.Name, &dog.Description, &dog.OwnerID,
			&dog.AdoptionMessage, &dog.AdoptionDate); err != nil {
			return nil, apperror.NewDatabaseError("Failed to fetch adopted dogs", err)
		}
		dogList = append(dogList, dog)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch adopted dogs", err)
	}

	ownerIDs := make([]int, 0, len(dogList))
	for _, dog := range dogList {
		ownerIDs = append(ownerIDs, dog.OwnerID)
	}
	owners, err := s.userDir.ByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]AdoptedDogItem, 0, len(dogList))
	for _, dog := range dogList {
		items = append(items, AdoptedDogItem{
			ID:              dog.ID.String(),
			Name:            dog.Name,
			Description:     dog.Description,
			OriginalOwner:   owners[dog.OwnerID].Username,
			AdoptionMessage: dog.AdoptionMessage,
			AdoptionDate:    dog.AdoptionDate,
		})
	}

	return &AdoptedDogsResponse{
		Dogs:       items,
		Pagination: pagination.NewMeta(p, total),
	}, nil
}

// resolveAdopters batch-resolves adopter usernames for a page of dogs.
func (s *service) resolveAdopters(ctx context.Context, dogList []Dog) (map[int]users.PublicUser, error) {
	ids := make([]int, 0, len(dogList))
	seen := make(map[int]struct{})
	for _, dog := range dogList {
		if dog.AdopterID == nil {
			continue
		}
		if _, ok := seen[*dog.AdopterID]; ok {
			continue
		}
		seen[*dog.AdopterID] = struct{}{}
		ids = append(ids, *dog.AdopterID)
	}
	return s.userDir.ByIDs(ctx, ids)
}

// placeholder renders the n-th positional SQL parameter.
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
