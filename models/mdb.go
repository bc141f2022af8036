package models

// MongoDbCollection is the name of a collection in the bot's mongo database.
type MongoDbCollection string

func (m MongoDbCollection) String() string {
	return string(m)
}
