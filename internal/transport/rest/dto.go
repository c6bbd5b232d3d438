package rest

import (
	"time"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
	}
}

type venueResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	URLName           string    `json:"urlName"`
	LegacyID          int64     `json:"openkjVenueId"`
	AcceptingRequests bool      `json:"acceptingRequests"`
	Address           *string   `json:"address"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toVenueResponse(v *domain.Venue) venueResponse {
	return venueResponse{
		ID:                v.ID.String(),
		Name:              v.Name,
		URLName:           v.URLName,
		LegacyID:          v.LegacyID,
		AcceptingRequests: v.AcceptingRequests,
		Address:           v.Address,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// publicVenueResponse is the venue snapshot shown to singers.
type publicVenueResponse struct {
	Name              string  `json:"name"`
	URLName           string  `json:"urlName"`
	AcceptingRequests bool    `json:"acceptingRequests"`
	Address           *string `json:"address"`
}

type systemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LegacyID  int64     `json:"openkjSystemId"`
	SongCount int       `json:"songCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toSystemResponse(s *domain.System) systemResponse {
	return systemResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		LegacyID:  s.LegacyID,
		SongCount: s.SongCount,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type songResponse struct {
	ID        string    `json:"id"`
	SystemID  string    `json:"systemId"`
	Artist    string    `json:"artist"`
	Title     string    `json:"title"`
	Combined  string    `json:"combined"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSongResponse(s *domain.Song) songResponse {
	return songResponse{
		ID:        s.ID.String(),
		SystemID:  s.SystemID.String(),
		Artist:    s.Artist,
		Title:     s.Title,
		Combined:  s.Combined,
		CreatedAt: s.CreatedAt,
	}
}

type songItem struct {
	Artist string `json:"artist" validate:"required,max=255"`
	Title  string `json:"title" validate:"required,max=255"`
}

type requestResponse struct {
	ID              string     `json:"id"`
	VenueID         string     `json:"venueId"`
	SingerProfileID *string    `json:"singerProfileId"`
	SingerName      *string    `json:"singerName"`
	Artist          string     `json:"artist"`
	Title           string     `json:"title"`
	KeyChange       int        `json:"keyChange"`
	Notes           *string    `json:"notes"`
	Processed       bool       `json:"processed"`
	ProcessedAt     *time.Time `json:"processedAt"`
	RequestedAt     time.Time  `json:"requestedAt"`
}

func toRequestResponse(r *domain.Request) requestResponse {
	resp := requestResponse{
		ID:          r.ID.String(),
		VenueID:     r.VenueID.String(),
		SingerName:  r.SingerName,
		Artist:      r.Artist,
		Title:       r.Title,
		KeyChange:   r.KeyChange,
		Notes:       r.Notes,
		Processed:   r.Processed,
		ProcessedAt: r.ProcessedAt,
		RequestedAt: r.RequestedAt,
	}
	if r.SingerProfileID != nil {
		id := r.SingerProfileID.String()
		resp.SingerProfileID = &id
	}
	return resp
}

type historyResponse struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venueId"`
	Artist      string    `json:"artist"`
	Title       string    `json:"title"`
	KeyChange   int       `json:"keyChange"`
	RequestedAt time.Time `json:"requestedAt"`
}

func toHistoryResponse(e *domain.SingerHistoryEntry) historyResponse {
	return historyResponse{
		ID:          e.ID.String(),
		VenueID:     e.VenueID.String(),
		Artist:      e.Artist,
		Title:       e.Title,
		KeyChange:   e.KeyChange,
		RequestedAt: e.RequestedAt,
	}
}

type apiKeyResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	KeyPrefix   string     `json:"keyPrefix"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	LastUsedAt  *time.Time `json:"lastUsedAt"`
	RevokedAt   *time.Time `json:"revokedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toAPIKeyResponse(k *domain.APIKey) apiKeyResponse {
	return apiKeyResponse{
		ID:          k.ID.String(),
		Description: k.Description,
		KeyPrefix:   k.KeyPrefix,
		Status:      k.Status.String(),
		ExpiresAt:   k.ExpiresAt,
		LastUsedAt:  k.LastUsedAt,
		RevokedAt:   k.RevokedAt,
		CreatedAt:   k.CreatedAt,
	}
}

type auditResponse struct {
	ID          string         `json:"id"`
	ActorUserID *string        `json:"actorUserId"`
	EntityType  string         `json:"entityType"`
	EntityID    string         `json:"entityId"`
	Action      string         `json:"action"`
	Changes     map[string]any `json:"changes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func toAuditResponse(a *domain.AuditRecord) auditResponse {
	resp := auditResponse{
		ID:         a.ID.String(),
		EntityType: a.EntityType.String(),
		EntityID:   a.EntityID.String(),
		Action:     a.Action.String(),
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
	if a.ActorUserID != nil {
		id := a.ActorUserID.String()
		resp.ActorUserID = &id
	}
	return resp
}

// mapSlice converts a slice of domain values with fn.
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
