package dto

// ── room types ──

// CreateRoomTypeRequest creates a room classification.
type CreateRoomTypeRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// RoomTypeResponse is the room type shape.
type RoomTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ── rooms ──

// CreateRoomRequest creates a physical room.
type CreateRoomRequest struct {
	Name       string `json:"name"         binding:"required,min=1,max=50"`
	Capacity   int    `json:"capacity"     binding:"omitempty,min=0,max=1000"`
	RoomTypeID string `json:"room_type_id" binding:"required,uuid"`
	Equipment  string `json:"equipment"    binding:"omitempty,max=300"`
	Location   string `json:"location"     binding:"omitempty,max=150"`
}

// UpdateRoomRequest updates a room. Nil fields are left untouched.
type UpdateRoomRequest struct {
	Name       *string `json:"name"         binding:"omitempty,min=1,max=50"`
	Capacity   *int    `json:"capacity"     binding:"omitempty,min=0,max=1000"`
	RoomTypeID *string `json:"room_type_id" binding:"omitempty,uuid"`
	Equipment  *string `json:"equipment"    binding:"omitempty,max=300"`
	Location   *string `json:"location"     binding:"omitempty,max=150"`
	IsActive   *bool   `json:"is_active"`
}

// RoomListRequest filters the room list.
type RoomListRequest struct {
	RoomTypeID      string `form:"room_type_id" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}

// RoomResponse is the room shape returned across modules.
type RoomResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Capacity  int               `json:"capacity"`
	RoomType  *RoomTypeResponse `json:"room_type,omitempty"`
	Equipment string            `json:"equipment,omitempty"`
	Location  string            `json:"location,omitempty"`
	IsActive  bool              `json:"is_active"`
	CreatedAt string            `json:"created_at,omitempty"`
}
