package orm

import (
	"log"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	designs *model.Designs
	config  *map[string]string

	sqlConfigs map[string]*sqlConfig
	sqlDesigns map[string]*sqlDesign
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, err
	}

	// A single connection keeps :memory: databases alive between queries and matches sqlite's one writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlDesign{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) LoadDesigns() (*model.Designs, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.designs != nil {
		return s.designs, nil
	}

	s.console.Printf("Loading designs...\n")

	result := model.NewDesigns()

	var designs []*sqlDesign
	err := s.db.Find(&designs).Error
	if err != nil {
		return nil, err
	}

	s.sqlDesigns = createCache(designs)

	for _, sd := range designs {
		d, err := sd.ToModel()
		if err != nil {
			s.console.Errorf("Ignoring design: %v\n", err)
			continue
		}

		result.AddFromStorage(d)
	}

	s.designs = result
	return result, nil
}

func (s *gormStorage) WriteDesigns() error {
	if s.designs == nil {
		return nil
	}

	return s.writeDesigns(s.designs.List())
}

func (s *gormStorage) WriteDesign(design *model.Design) error {
	if s.designs == nil {
		return errors.New("designs not loaded")
	}

	return s.writeDesigns([]*model.Design{design})
}

func (s *gormStorage) writeDesigns(designs []*model.Design) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().Local()

	sqlDesigns := prepareChanges(designs, newSqlDesign, &s.sqlDesigns)
	if len(sqlDesigns) == 0 {
		return nil
	}

	for _, sd := range sqlDesigns {
		if !sd.CreatedAt.IsZero() {
			sd.UpdatedAt = now
		}
	}

	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlDesigns).Error
	if err != nil {
		return err
	}

	addList(&s.sqlDesigns, sqlDesigns)

	byID := lo.KeyBy(designs, func(d *model.Design) model.UUID { return d.ID })
	for _, sd := range sqlDesigns {
		d := byID[sd.ID]
		d.CreatedAt = sd.CreatedAt
		d.UpdatedAt = sd.UpdatedAt
	}

	return nil
}

func (s *gormStorage) DeleteDesign(id model.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := s.db.Delete(&sqlDesign{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if s.sqlDesigns != nil {
		delete(s.sqlDesigns, string(id))
	}
	if s.designs != nil {
		s.designs.Remove(id)
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(model.ErrDesignNotFound, "%v", id)
	}

	return nil
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	s.console.Printf("Loading config...\n")

	result := map[string]string{}

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(sqlConfigs)

	for _, sc := range sqlConfigs {
		result[sc.Key] = sc.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var sqlConfigs []*sqlConfig
	for k, v := range *s.config {
		sc := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, sc) {
			sqlConfigs = append(sqlConfigs, sc)
		}
	}

	if len(sqlConfigs) > 0 {
		now := time.Now().Local()
		db := s.db.Session(&gorm.Session{
			NowFunc:         func() time.Time { return now },
			CreateBatchSize: 300,
		})

		err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
		if err != nil {
			return err
		}

		addList(&s.sqlConfigs, sqlConfigs)
	}

	removed := lo.Filter(lo.Keys(s.sqlConfigs), func(k string, _ int) bool {
		_, ok := (*s.config)[k]
		return !ok
	})
	if len(removed) > 0 {
		err := s.db.Delete(&sqlConfig{}, "`key` in ?", removed).Error
		if err != nil {
			return err
		}

		for _, k := range removed {
			delete(s.sqlConfigs, k)
		}
	}

	return nil
}

func addList[T sqlTable](target *map[string]T, toAdd []T) {
	for _, v := range toAdd {
		(*target)[v.CacheKey()] = v
	}
}

func prepareChanges[S sqlTable, M any](models []M, toSql func(M) S, cache *map[string]S) []S {
	var result []S
	for _, m := range models {
		s := toSql(m)
		if prepareChange(cache, s) {
			result = append(result, s)
		}
	}
	return result
}

func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if ok && reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}
