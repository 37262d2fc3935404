package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/shenikar/school_locator/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Record - одна школа из файла начальных данных
type Record struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Result - итог загрузки
type Result struct {
	Added   int
	Skipped int
}

// Load читает JSON-массив школ
func Load(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("seed: decode records: %w", err)
	}
	return records, nil
}

// Run добавляет школы через сервис, не более concurrency одновременно.
// Записи в пределах tolerance от более ранней записи файла отбрасываются до параллельной вставки,
// иначе проверка дубликатов в сервисе пропустит обе. Дубликаты и записи с неверными данными
// пропускаются, любая другая ошибка останавливает загрузку.
func Run(ctx context.Context, svc service.SchoolService, records []Record, concurrency int, tolerance float64, log *logrus.Logger) (Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var added, skipped atomic.Int64
	batch := make([]indexedRecord, 0, len(records))
	for i, rec := range records {
		if first, ok := nearest(batch, rec, tolerance); ok {
			log.WithFields(logrus.Fields{"record": i, "duplicate_of": first}).Warn("Skipping seed record with duplicate location")
			skipped.Add(1)
			continue
		}
		batch = append(batch, indexedRecord{index: i, Record: rec})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, rec := range batch {
		g.Go(func() error {
			school := &models.School{
				Name:      rec.Name,
				Address:   rec.Address,
				Latitude:  rec.Latitude,
				Longitude: rec.Longitude,
			}
			err := svc.AddSchool(gctx, school)
			switch {
			case err == nil:
				added.Add(1)
				return nil
			case errors.Is(err, service.ErrDuplicateLocation), errors.Is(err, geo.ErrInvalidArgument):
				log.WithError(err).WithField("record", rec.index).Warn("Skipping seed record")
				skipped.Add(1)
				return nil
			default:
				return fmt.Errorf("seed: record %d (%s): %w", rec.index, rec.Name, err)
			}
		})
	}

	err := g.Wait()
	return Result{Added: int(added.Load()), Skipped: int(skipped.Load())}, err
}

type indexedRecord struct {
	index int
	Record
}

// nearest ищет в batch запись с тем же местоположением, что и rec (тот же предикат, что у репозитория)
func nearest(batch []indexedRecord, rec Record, tolerance float64) (int, bool) {
	for _, b := range batch {
		if math.Abs(b.Latitude-rec.Latitude) < tolerance && math.Abs(b.Longitude-rec.Longitude) < tolerance {
			return b.index, true
		}
	}
	return 0, false
}
