// Package runtime provides the execution context for zikkycal commands.
//
// It bundles the dependencies each command needs: the loaded user
// configuration, the logger and the session id that tags every log record.
package runtime
