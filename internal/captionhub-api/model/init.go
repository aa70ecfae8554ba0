/*
Copyright 2024 The CaptionHub Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jinzhu/gorm"
	// GORM MySQL dialect
	_ "github.com/jinzhu/gorm/dialects/mysql"

	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

var DB *gorm.DB

// Init opens the database from mysql.* config keys
func Init() *gorm.DB {
	return openDB(viper.GetString("mysql.username"),
		viper.GetString("mysql.password"),
		viper.GetString("mysql.addr"),
		viper.GetString("mysql.name"))
}

// openDB
func openDB(username, password, addr, name string) *gorm.DB {
	config := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=%t&loc=%s",
		username,
		password,
		addr,
		name,
		true,
		"Local")

	db, err := gorm.Open("mysql", config)
	if err != nil {
		log.Errorf("Database connection failed. Database name: %s, err: %+v", name, err)
		panic(err)
	}

	db.Set("gorm:table_options", "CHARSET=utf8mb4")

	db.LogMode(viper.GetBool("mysql.show_log"))
	// Setting the maximum number of connections avoids too-many-connection
	// errors under high concurrency. 0 means unlimited.
	db.DB().SetMaxOpenConns(viper.GetInt("mysql.max_open_conn"))
	db.DB().SetMaxIdleConns(viper.GetInt("mysql.max_idle_conn"))
	db.DB().SetConnMaxLifetime(time.Minute * viper.GetDuration("mysql.conn_max_life_time"))

	DB = db

	return db
}

// GetDB
func GetDB() *gorm.DB {
	return DB
}

// MigrateDB
func MigrateDB() {
	DB.AutoMigrate(
		&UserBaseModel{},
		&CaptionModel{},
		&ShareModel{},
	)
}
