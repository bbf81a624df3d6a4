// Package grpc exposes the brandsync service over gRPC: auth, per-field
// reads and writes, changed-since sync, and presigned document URLs.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/mpetrenko/brandsync/internal/logging"
	pb "github.com/mpetrenko/brandsync/internal/proto"
	"github.com/mpetrenko/brandsync/internal/server/models"
	"github.com/mpetrenko/brandsync/internal/server/services"
	"google.golang.org/grpc"
)

// UserProvider is the slice of the user service the handlers need.
type UserProvider interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *services.TokenPair, error)
}

// FieldProvider is the slice of the field service the handlers need.
type FieldProvider interface {
	Write(ctx context.Context, userID string, field *models.Field) (time.Time, error)
	Get(ctx context.Context, userID, fieldID string) (*models.Field, error)
	ChangedSince(ctx context.Context, userID string, since time.Time) ([]*models.Field, time.Time, error)
}

// DocumentProvider is the slice of the document service the handlers need.
type DocumentProvider interface {
	GetUploadURL(ctx context.Context, userID, fileName string) (string, string, error)
	GetDownloadURL(ctx context.Context, key string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedBrandSyncServer
	address   string
	users     UserProvider
	fields    FieldProvider
	documents DocumentProvider
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserProvider, fs FieldProvider, ds DocumentProvider, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		fields:    fs,
		documents: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterBrandSyncServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
