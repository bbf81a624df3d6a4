package grpc

import (
	"context"
	"errors"

	"github.com/mpetrenko/brandsync/internal/common"
	pb "github.com/mpetrenko/brandsync/internal/proto"
	"github.com/mpetrenko/brandsync/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// UserIDKey is the context key under which the interceptor stores the
// authenticated user's ID.
const UserIDKey ctxKey = "userID"

// openMethods can be called without an access token.
var openMethods = map[string]bool{
	pb.BrandSync_RegisterUser_FullMethodName: true,
	pb.BrandSync_Login_FullMethodName:        true,
	pb.BrandSync_RefreshToken_FullMethodName: true,
	pb.BrandSync_Ping_FullMethodName:         true,
}

// userIDFromContext returns the authenticated user ID placed by the
// interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// accessTokenInterceptor authenticates every non-open method. An expired
// token is reported with ErrTokenExpired's message so the client knows to
// refresh and retry.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userID)
	}

	return handler(ctx, req)
}
