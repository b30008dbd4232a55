package utils

import (
	"testing"

	"github.com/Luismorlan/yatube/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempDB(t *testing.T) {
	db, dbName := CreateTempDB(t)
	assert.True(t, isTempDB(dbName))

	for _, m := range []interface{}{&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestTempDBsAreIsolated(t *testing.T) {
	db1, name1 := CreateTempDB(t)
	db2, name2 := CreateTempDB(t)
	require.NotEqual(t, name1, name2)

	require.Nil(t, db1.Create(&model.User{Username: "only_in_db1"}).Error)

	var count int64
	db2.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db1.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, _ := CreateTempDB(t)
	err := db.Create(&model.Post{Text: "orphan", AuthorID: 42}).Error
	assert.NotNil(t, err)
}

func TestFollowSelfRejected(t *testing.T) {
	db, _ := CreateTempDB(t)
	u := model.User{Username: "narcissus"}
	require.Nil(t, db.Create(&u).Error)
	err := db.Create(&model.Follow{UserID: u.ID, AuthorID: u.ID}).Error
	assert.NotNil(t, err)
}
