// Package environment carries the deployment environment (APP_ENV) of the
// note server through contexts and log records.
//
// Parse turns APP_ENV into an Environment. The server stores it in its root
// context with WithContext and in every request context with Middleware;
// LoggerExtractor then tags log records with it, and pkg/logger picks its
// format and level from it.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
package environment
