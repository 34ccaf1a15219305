package tenantforum

import "fmt"

// Option is a function that configures a Forum.
//
// Example:
//
//	forum, err := tenantforum.NewForum(
//	    tenantforum.WithRepositories(repos.Topic, repos.Response),
//	    tenantforum.WithLogger(logger),
//	)
type Option func(*Forum) error

// WithRepositories sets the required repository dependencies for the forum.
// Both repositories are required and must not be nil.
//
// This is a required option for NewForum.
func WithRepositories(topicRepo TopicRepository, responseRepo ResponseRepository) Option {
	return func(f *Forum) error {
		if topicRepo == nil {
			return fmt.Errorf("topicRepo cannot be nil")
		}
		if responseRepo == nil {
			return fmt.Errorf("responseRepo cannot be nil")
		}

		f.topics = topicRepo
		f.responses = responseRepo
		return nil
	}
}

// WithLogger sets the logger instance for the forum.
// This is an optional configuration - NoopLogger is used if not provided.
func WithLogger(logger Logger) Option {
	return func(f *Forum) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		f.logger = logger
		return nil
	}
}

// WithNotifications sets an optional notification service for the forum.
// This is an optional configuration - if not provided, NoOpNotificationService is used.
func WithNotifications(service NotificationService) Option {
	return func(f *Forum) error {
		if service == nil {
			return fmt.Errorf("notification service cannot be nil")
		}
		f.notifications = service
		return nil
	}
}
