package utils

import (
	"fmt"

	"sattva/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// MediaResolver turns catalog image IDs into delivery URLs.
type MediaResolver interface {
	ImageURL(publicID string) string
}

// CloudinaryMedia builds Cloudinary delivery URLs. Building a URL does not
// call the Cloudinary API.
type CloudinaryMedia struct {
	cld            *cloudinary.Cloudinary
	transformation string
	logger         *zap.Logger
}

// NoMedia is used when no media host is configured; catalog items are served
// without image URLs and the client falls back to its placeholders.
type NoMedia struct{}

func (NoMedia) ImageURL(string) string { return "" }

// NewMediaResolver returns a Cloudinary-backed resolver when credentials are
// configured and NoMedia otherwise.
func NewMediaResolver(logger *zap.Logger) (MediaResolver, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" {
		logger.Info("media: cloudinary not configured, serving catalog without image URLs")
		return NoMedia{}, nil
	}
	if apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.NewMediaResolver: failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryMedia{
		cld:            cld,
		transformation: "c_fill,g_auto,w_800,q_auto,f_auto",
		logger:         logger,
	}, nil
}

// ImageURL returns the delivery URL for publicID, or "" if it cannot be built.
func (m *CloudinaryMedia) ImageURL(publicID string) string {
	if publicID == "" {
		return ""
	}
	img, err := m.cld.Image(publicID)
	if err != nil {
		m.logger.Warn("media: failed to build image asset", zap.String("publicID", publicID), zap.Error(err))
		return ""
	}
	img.Transformation = m.transformation
	url, err := img.String()
	if err != nil {
		m.logger.Warn("media: failed to build image URL", zap.String("publicID", publicID), zap.Error(err))
		return ""
	}
	return url
}
