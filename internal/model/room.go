package model

// RoomType classifies rooms (lecture room, computer lab, auditorium, ...).
type RoomType struct {
	RoomTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_type_id"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

// TableName sets the table name.
func (RoomType) TableName() string { return "room_types" }

// Room is a physical classroom — maps to rooms.
type Room struct {
	RoomID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	Name       string `gorm:"type:varchar(50);not null"                      json:"name"`
	Capacity   int    `gorm:"type:smallint;not null;default:0"               json:"capacity"`
	RoomTypeID string `gorm:"type:uuid;not null"                             json:"room_type_id"`
	Equipment  string `gorm:"type:varchar(300)"                              json:"equipment,omitempty"`
	Location   string `gorm:"type:varchar(150)"                              json:"location,omitempty"`
	IsActive   bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	RoomType *RoomType `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"room_type,omitempty"`
}

// TableName sets the table name.
func (Room) TableName() string { return "rooms" }
