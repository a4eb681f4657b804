package service

import (
	"context"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

type Config interface {
	TableName() string
}

type EntryStore interface {
	Put(ctx context.Context, entry domain.FileEntry) error
}

type FileDataService struct {
	cfg   Config
	store EntryStore
}

func NewFileDataService(config Config, store EntryStore) *FileDataService {
	return &FileDataService{
		cfg:   config,
		store: store,
	}
}

// Handle writes one FileEntry per record, in order, and stops at the first
// record that is malformed or cannot be stored. Entries written before the
// failure are left in place.
func (service FileDataService) Handle(ctx context.Context, notification domain.Notification) (domain.Response, error) {
	log := logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = logger.With("requestId", lc.AwsRequestID)
	}

	if notification.Records == nil {
		err := domain.MalformedRecordError{Index: -1, Field: "Records"}
		log.Error(err)
		return domain.Response{}, err
	}

	log.Debugf("Processing %d records", len(notification.Records))

	for i, record := range notification.Records {
		entry, err := record.Entry(i)
		if err != nil {
			log.Error(err)
			return domain.Response{}, err
		}

		err = service.store.Put(ctx, entry)
		if err != nil {
			err := StorageWriteError{index: i, id: entry.ID, base: err}
			log.Error(err)
			return domain.Response{}, err
		}

		log.Infof("Uploaded %s to %s", entry.ID, service.cfg.TableName())
	}

	return domain.SuccessResponse(), nil
}
