package seeders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopapi/app/models"
	"shopapi/database/seeders"
)

func TestRunAllIsRepeatable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seeders_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Collection{}))

	// Running twice must not duplicate rows or trip unique constraints.
	require.NoError(t, seeders.RunAll(db))
	require.NoError(t, seeders.RunAll(db))

	var staff int64
	require.NoError(t, db.Model(&models.User{}).Where("is_staff = ?", true).Count(&staff).Error)
	assert.Equal(t, int64(1), staff)

	var collections int64
	require.NoError(t, db.Model(&models.Collection{}).Count(&collections).Error)
	assert.Equal(t, int64(1), collections)

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(3), products)
}
