package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"Username"`
	Email      string             `bson:"email" json:"Email"`
	Password   string             `bson:"password" json:"-"`
	FirstName  string             `bson:"first_name,omitempty" json:"FirstName"`
	LastName   string             `bson:"last_name,omitempty" json:"LastName"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
