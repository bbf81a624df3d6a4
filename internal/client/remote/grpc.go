package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
	"github.com/mpetrenko/brandsync/internal/common"
	pb "github.com/mpetrenko/brandsync/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const defaultRequestTimeout = 10 * time.Second

// GRPCClient implements Client over the brandsync gRPC service. It owns
// the access/refresh token pair and transparently retries a call once
// after refreshing an expired access token.
type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	client         pb.BrandSyncClient
	accessToken    string
	refreshToken   string
	requestTimeout time.Duration
}

// NewGRPCClient dials endpointURL and returns a ready client. The
// connection is lazy; no network I/O happens until the first call.
func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: defaultRequestTimeout}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewBrandSyncClient(conn)
	return c, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {
		st, ok := status.FromError(err)
		if !ok {
			return err
		}
		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}
		if s.refreshToken == "" {
			return err
		}

		resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = resp.AccessToken
		s.refreshToken = resp.RefreshToken

		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	return err
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.RegisterUser(ctx, &pb.RegisterUserRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return resp.UserId, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) FetchField(ctx context.Context, fieldID string) (*models.FieldRecord, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.FetchField(ctx, &pb.FetchFieldRequest{FieldId: fieldID})
	if err != nil {
		return nil, false, s.mapError(err)
	}
	if !resp.Found {
		return nil, false, nil
	}

	return recordFromProto(resp.Field), true, nil
}

func (s *GRPCClient) WriteField(ctx context.Context, rec *models.FieldRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	req := &pb.WriteFieldRequest{Field: &pb.FieldRecord{
		FieldId:         rec.FieldID,
		Category:        string(rec.Category),
		Content:         rec.Content,
		UpdatedAtUnixMs: rec.UpdatedAt.UnixMilli(),
	}}

	if _, err := s.client.WriteField(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) FetchChangedSince(ctx context.Context, since time.Time) ([]models.FieldRecord, time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	var sinceMs int64
	if !since.IsZero() {
		sinceMs = since.UnixMilli()
	}

	resp, err := s.client.FetchChangedSince(ctx, &pb.FetchChangedSinceRequest{SinceUnixMs: sinceMs})
	if err != nil {
		return nil, time.Time{}, s.mapError(err)
	}

	result := make([]models.FieldRecord, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		result = append(result, *recordFromProto(f))
	}

	return result, time.UnixMilli(resp.ServerTimeUnixMs), nil
}

func (s *GRPCClient) GetDocumentUploadURL(ctx context.Context, fileName string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.GetDocumentUploadUrl(ctx, &pb.GetDocumentUploadUrlRequest{FileName: fileName})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) GetDocumentDownloadURL(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.GetDocumentDownloadUrl(ctx, &pb.GetDocumentDownloadUrlRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func recordFromProto(f *pb.FieldRecord) *models.FieldRecord {
	return &models.FieldRecord{
		FieldID:   f.FieldId,
		Category:  models.Category(f.Category),
		Content:   f.Content,
		UpdatedAt: time.UnixMilli(f.UpdatedAtUnixMs),
	}
}

// mapError translates transport errors into the client error taxonomy.
// Unavailable and DeadlineExceeded both indicate a transient network
// condition and map to ErrUnavailable, which the coordinator reports as
// the "offline" status.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
