package model

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Codec maps model identifiers to and from the _id values stored in MongoDB.
//
// Exactly one codec is wired into a repository at construction time; the two
// key strategies are never mixed within one repository.
type Codec[ID comparable] interface {
	// EncodeID converts an identifier into the BSON value used as _id in
	// filters and stored documents.
	EncodeID(id ID) interface{}

	// DecodeInsertedID recovers an identifier from the inserted-key value
	// the driver echoes back after InsertOne. It fails on any unexpected
	// shape and must never panic.
	DecodeInsertedID(v interface{}) (ID, error)
}

// ObjectIDCodec is the native-key strategy: identifiers are store-generated
// 12-byte ObjectIDs and pass through unchanged.
type ObjectIDCodec struct{}

func (ObjectIDCodec) EncodeID(id primitive.ObjectID) interface{} { return id }

func (ObjectIDCodec) DecodeInsertedID(v interface{}) (primitive.ObjectID, error) {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id, nil
	case string:
		return primitive.ObjectIDFromHex(id)
	default:
		return primitive.NilObjectID, fmt.Errorf("inserted id is %T, not an ObjectID", v)
	}
}

// UUIDCodec is the client-generated-key strategy: identifiers are 128-bit
// UUIDs packed into the generic BSON binary subtype before use as _id.
type UUIDCodec struct{}

func (UUIDCodec) EncodeID(id uuid.UUID) interface{} {
	return primitive.Binary{
		Subtype: bsontype.BinaryGeneric,
		Data:    id[:],
	}
}

func (UUIDCodec) DecodeInsertedID(v interface{}) (uuid.UUID, error) {
	switch id := v.(type) {
	case primitive.Binary:
		return uuid.FromBytes(id.Data)
	case string:
		return uuid.Parse(id)
	default:
		return uuid.Nil, fmt.Errorf("inserted id is %T, not a binary UUID", v)
	}
}
