package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/mpetrenko/brandsync/internal/common"
	pb "github.com/mpetrenko/brandsync/internal/proto"
	"github.com/mpetrenko/brandsync/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "login already exists")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	userID, tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{
		UserId:       userID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	_, tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) FetchField(ctx context.Context, req *pb.FetchFieldRequest) (*pb.FetchFieldResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	field, err := s.fields.Get(ctx, userID, req.FieldId)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &pb.FetchFieldResponse{Found: false}, nil
		}
		if errors.Is(err, common.ErrorMissingFieldID) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.FetchFieldResponse{Found: true, Field: fieldToProto(field)}, nil
}

func (s *GRPCServer) WriteField(ctx context.Context, req *pb.WriteFieldRequest) (*pb.WriteFieldResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}
	if req.Field == nil {
		return nil, status.Error(codes.InvalidArgument, "missing field")
	}

	updatedAt, err := s.fields.Write(ctx, userID, &models.Field{
		FieldID:  req.Field.FieldId,
		Category: req.Field.Category,
		Content:  req.Field.Content,
	})
	if err != nil {
		if errors.Is(err, common.ErrorMissingFieldID) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.WriteFieldResponse{UpdatedAtUnixMs: updatedAt.UnixMilli()}, nil
}

func (s *GRPCServer) FetchChangedSince(ctx context.Context, req *pb.FetchChangedSinceRequest) (*pb.FetchChangedSinceResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	changed, serverTime, err := s.fields.ChangedSince(ctx, userID, time.UnixMilli(req.SinceUnixMs))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.FetchChangedSinceResponse{ServerTimeUnixMs: serverTime.UnixMilli()}
	for _, f := range changed {
		resp.Fields = append(resp.Fields, fieldToProto(f))
	}
	return resp, nil
}

func (s *GRPCServer) GetDocumentUploadUrl(ctx context.Context, req *pb.GetDocumentUploadUrlRequest) (*pb.GetDocumentUploadUrlResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	key, url, err := s.documents.GetUploadURL(ctx, userID, req.FileName)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetDocumentUploadUrlResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) GetDocumentDownloadUrl(ctx context.Context, req *pb.GetDocumentDownloadUrlRequest) (*pb.GetDocumentDownloadUrlResponse, error) {

	if _, ok := userIDFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	url, err := s.documents.GetDownloadURL(ctx, req.Key)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetDocumentDownloadUrlResponse{Url: url}, nil
}

func fieldToProto(f *models.Field) *pb.FieldRecord {
	return &pb.FieldRecord{
		FieldId:         f.FieldID,
		Category:        f.Category,
		Content:         f.Content,
		UpdatedAtUnixMs: f.UpdatedAt.UnixMilli(),
	}
}
