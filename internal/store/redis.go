package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lanagram/internal/models"
	"lanagram/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	accountKeyPrefix = "account:"
	docKeyPrefix     = "doc:"
	indexKeyPrefix   = "col:"
	blobKeyPrefix    = "blob:"
)

// accountRecord is the credential document kept by the hosted auth
// provider. Credentials are plaintext: this backend mirrors the
// client's storage model, it is not a security boundary.
type accountRecord struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// RedisBackend implements the Backend contract against Redis: one JSON
// document per key plus a per-collection insertion-order index.
type RedisBackend struct {
	client *redis.Client
	log    *observability.StoreLogger
}

var _ Backend = (*RedisBackend)(nil)

// NewRedisBackend connects to Redis at addr, which may be a host:port
// pair or a redis:// URL.
func NewRedisBackend(addr string) (*RedisBackend, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL %q: %w", addr, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, models.NewTransportError("redis unreachable", err)
	}

	return &RedisBackend{client: client, log: observability.NewStoreLogger("redis")}, nil
}

// NewRedisBackendFromClient wraps an existing client. Used by tests.
func NewRedisBackendFromClient(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client, log: observability.NewStoreLogger("redis")}
}

func (b *RedisBackend) RegisterAccount(ctx context.Context, email, password string) (string, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "register_account")
	defer span.End()

	key := accountKeyPrefix + strings.ToLower(email)
	record := accountRecord{ID: uuid.NewString(), Password: password}
	raw, err := json.Marshal(record)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	created, err := b.client.SetNX(ctx, key, raw, 0).Result()
	if err != nil {
		b.log.LogError(ctx, err, "register_account", key)
		return "", models.NewTransportError("account registration failed", err)
	}
	if !created {
		return "", models.NewValidationError("An account with this email already exists.")
	}
	return record.ID, nil
}

func (b *RedisBackend) Authenticate(ctx context.Context, identifier, password string) (string, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "authenticate")
	defer span.End()

	key := accountKeyPrefix + strings.ToLower(identifier)
	raw, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", models.NewValidationError("Incorrect identifier or password.")
	}
	if err != nil {
		b.log.LogError(ctx, err, "authenticate", key)
		return "", models.NewTransportError("authentication failed", err)
	}

	var record accountRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return "", models.NewInternalError(err)
	}
	if record.Password != password {
		return "", models.NewValidationError("Incorrect identifier or password.")
	}
	return record.ID, nil
}

func (b *RedisBackend) FetchDocument(ctx context.Context, collection, id string) ([]byte, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "fetch_document")
	defer span.End()

	raw, err := b.client.Get(ctx, docKeyPrefix+collection+":"+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		b.log.LogError(ctx, err, "fetch_document", collection+":"+id)
		return nil, models.NewTransportError("document fetch failed", err)
	}
	return raw, nil
}

func (b *RedisBackend) ListDocuments(ctx context.Context, collection string) ([][]byte, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "list_documents")
	defer span.End()

	ids, err := b.client.LRange(ctx, indexKeyPrefix+collection, 0, -1).Result()
	if err != nil {
		b.log.LogError(ctx, err, "list_documents", collection)
		return nil, models.NewTransportError("collection fetch failed", err)
	}
	if len(ids) == 0 {
		return [][]byte{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKeyPrefix + collection + ":" + id
	}
	values, err := b.client.MGet(ctx, keys...).Result()
	if err != nil {
		b.log.LogError(ctx, err, "list_documents", collection)
		return nil, models.NewTransportError("collection fetch failed", err)
	}

	docs := make([][]byte, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// Index entry with a missing document; tolerated.
			continue
		}
		docs = append(docs, []byte(s))
	}
	b.log.LogRead(ctx, collection, len(docs))
	return docs, nil
}

func (b *RedisBackend) UpdateDocument(ctx context.Context, collection, id string, doc []byte) error {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "update_document")
	defer span.End()

	key := docKeyPrefix + collection + ":" + id
	exists, err := b.client.Exists(ctx, key).Result()
	if err != nil {
		b.log.LogError(ctx, err, "update_document", key)
		return models.NewTransportError("document write failed", err)
	}
	if err := b.client.Set(ctx, key, doc, 0).Err(); err != nil {
		b.log.LogError(ctx, err, "update_document", key)
		return models.NewTransportError("document write failed", err)
	}
	if exists == 0 {
		if err := b.client.RPush(ctx, indexKeyPrefix+collection, id).Err(); err != nil {
			b.log.LogError(ctx, err, "update_document", key)
			return models.NewTransportError("collection index write failed", err)
		}
	}
	b.log.LogWrite(ctx, key, len(doc))
	return nil
}

func (b *RedisBackend) UploadBlob(ctx context.Context, path string, data []byte, onProgress func(BlobProgress)) (string, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "upload_blob")
	defer span.End()

	if err := b.client.Set(ctx, blobKeyPrefix+path, data, 0).Err(); err != nil {
		b.log.LogError(ctx, err, "upload_blob", path)
		return "", models.NewTransportError("blob upload failed", err)
	}
	if onProgress != nil {
		onProgress(BlobProgress{Written: int64(len(data)), Total: int64(len(data))})
	}
	return "blob://" + path, nil
}

// FetchBlob retrieves a previously uploaded blob, or (nil, nil) when absent.
func (b *RedisBackend) FetchBlob(ctx context.Context, path string) ([]byte, error) {
	raw, err := b.client.Get(ctx, blobKeyPrefix+path).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewTransportError("blob fetch failed", err)
	}
	return raw, nil
}

// Close closes the underlying Redis connection.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
