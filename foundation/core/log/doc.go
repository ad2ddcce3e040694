// Package log provides structured logging for the mFIN calculator.
//
// Package: log
// Title: mFIN Structured Logging Framework
// Description: This package implements leveled, structured logging with
//              contextual fields, several output formats and integration with
//              the foundation error package. Loggers are values that are
//              passed explicitly; there is no process-wide default instance.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Removed async worker, audit level and global logger;
//                      deterministic field order in text output
//
// Usage:
//   import mfinlog "github.com/msto63/mFIN/foundation/core/log"
//
//   logger := mfinlog.NewWithConfig(mfinlog.Config{
//     Level:  mfinlog.LevelDebug,
//     Format: mfinlog.FormatText,
//     Output: os.Stderr,
//     Name:   "dispatch",
//   }).WithCorrelationID(sessionID)
//
//   logger.Debug("resolved calculations", mfinlog.Int("count", 3))
//
//   timer := logger.StartTimer("invoke")
//   // ... run the calculation
//   timer.Stop()
package log
