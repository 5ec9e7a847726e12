package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	"github.com/dmitrijs2005/userdir/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	result, err := s.directory.Register(ctx, req.FirstName, req.LastName, req.Email, []byte(req.Password))

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return &pb.AuthResponse{User: userToPB(result.User), Token: result.Token}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.directory.Login(ctx, req.Email, []byte(req.Password))

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthResponse{User: userToPB(result.User), Token: result.Token}, nil

}

func (s *GRPCServer) SearchUsers(ctx context.Context, req *pb.SearchUsersRequest) (*pb.SearchUsersResponse, error) {

	if _, ok := userIDFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	page, err := s.directory.Search(ctx, users.SearchQuery{
		Search:    req.Search,
		City:      req.City,
		Country:   req.Country,
		Gender:    req.Gender,
		MinAge:    int(req.MinAge),
		MaxAge:    int(req.MaxAge),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      int(req.Page),
		Limit:     int(req.Limit),
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.SearchUsersResponse{
		Users: make([]*pb.UserProfile, 0, len(page.Users)),
		Pagination: &pb.Pagination{
			Page:       int32(page.Page),
			Limit:      int32(page.Limit),
			Total:      int32(page.Total),
			TotalPages: int32(page.TotalPages),
			HasNext:    page.HasNext,
			HasPrev:    page.HasPrev,
		},
	}
	for _, u := range page.Users {
		resp.Users = append(resp.Users, userToPB(u))
	}
	return resp, nil

}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	updated, err := s.directory.UpdateProfile(ctx, userID, services.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		City:        req.City,
		Country:     req.Country,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Bio:         req.Bio,
		Interests:   req.Interests,
		Skills:      req.Skills,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UpdateProfileResponse{User: userToPB(updated)}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func userToPB(u *models.User) *pb.UserProfile {
	if u == nil {
		return nil
	}
	p := &pb.UserProfile{
		Id:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		City:      u.City,
		Country:   u.Country,
		Gender:    u.Gender,
		Bio:       u.Bio,
		Interests: u.Interests,
		Skills:    u.Skills,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.DateOfBirth != nil {
		p.DateOfBirth = u.DateOfBirth.Format("2006-01-02")
	}
	if u.LastLoginAt != nil {
		p.LastLoginAt = u.LastLoginAt.UTC().Format(time.RFC3339)
	}
	return p
}
