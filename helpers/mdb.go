package helpers

import (
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/models"
	"github.com/globalsign/mgo"
	"github.com/pkg/errors"
)

var (
	mDbSession  *mgo.Session
	mDbDatabase string
)

// ConnectMDb connects to mongodb and sets the default database
func ConnectMDb(url string, database string) {
	log := cache.GetLogger().WithField("module", "mdb")

	dialInfo, err := mgo.ParseURL(url)
	Relax(err)
	dialInfo.Timeout = 10 * time.Second

	log.Info("connecting to ", dialInfo.Addrs)

	mDbSession, err = mgo.DialWithInfo(dialInfo)
	Relax(err)

	mDbSession.SetMode(mgo.Monotonic, true)
	mDbSession.SetSafe(&mgo.Safe{WMode: "majority"})

	mDbDatabase = database

	log.Info("connected")
}

// GetMDb returns the mongodb database
func GetMDb() *mgo.Database {
	return mDbSession.DB(mDbDatabase)
}

// GetMDbSession returns the mongodb session
func GetMDbSession() *mgo.Session {
	return mDbSession
}

// MdbCollection takes a collection name and returns the mgo collection
func MdbCollection(collection models.MongoDbCollection) *mgo.Collection {
	return GetMDb().C(collection.String())
}

// MDbUpsert updates the first document matching $selector, inserting it if
// none matches
func MDbUpsert(collection models.MongoDbCollection, selector interface{}, data interface{}) (err error) {
	_, err = MdbCollection(collection).Upsert(selector, data)
	if err != nil {
		return errors.Wrap(err, "mdb upsert failed")
	}

	return nil
}

// MdbOne unmarshals the first document matching $selector into $object
func MdbOne(query *mgo.Query, object interface{}) (err error) {
	return query.One(object)
}

// IsMdbNotFound returns true if the error is mgo's not found error
func IsMdbNotFound(err error) (notFound bool) {
	return err == mgo.ErrNotFound || errors.Cause(err) == mgo.ErrNotFound
}
