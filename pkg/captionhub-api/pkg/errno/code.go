/*
Copyright 2024 The CaptionHub Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errno

//nolint: golint
var (
	// Common errors
	OK                  = &Errno{Code: 0, Message: "OK"}
	InternalServerError = &Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = &Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct."}
	ErrParam            = &Errno{Code: 10003, Message: "Invalid parameter"}

	// user errors
	ErrUserNotFound          = &Errno{Code: 20102, Message: "The user was not found."}
	ErrTokenInvalid          = &Errno{Code: 20103, Message: "Token invalid or session expired, please log in again"}
	ErrUserOrPassword        = &Errno{Code: 20111, Message: "Invalid username or password"}
	ErrTwicePasswordNotMatch = &Errno{Code: 20112, Message: "Passwords do not match"}
	ErrRegisterFailed        = &Errno{Code: 20113, Message: "Registration failed"}
	ErrUserNotAllow          = &Errno{Code: 20114, Message: "User is disabled"}
	ErrUserExist             = &Errno{Code: 20115, Message: "Username or email already exists"}
	ErrUsernameFormat        = &Errno{Code: 20116, Message: "Username must be 3-20 characters and contain only letters, numbers, and underscores"}
	ErrEmailFormat           = &Errno{Code: 20117, Message: "Please enter a valid email address"}
	ErrPasswordFormat        = &Errno{Code: 20118, Message: "Password must be at least 8 characters long"}
	ErrPasswordIncorrect     = &Errno{Code: 20119, Message: "Current password is incorrect"}

	// caption errors
	ErrCaptionCreate     = &Errno{Code: 30100, Message: "Failed to save caption, please retry"}
	ErrCaptionGet        = &Errno{Code: 30101, Message: "Failed to get caption, please retry"}
	ErrCaptionDelete     = &Errno{Code: 30102, Message: "Failed to delete caption"}
	ErrCaptionUpdate     = &Errno{Code: 30103, Message: "Failed to update caption"}
	ErrCaptionNotFound   = &Errno{Code: 30104, Message: "Caption not found or you don't have permission to view it"}
	ErrPermissionCaption = &Errno{Code: 30105, Message: "No permission for this caption"}

	// image errors
	ErrImageDecode       = &Errno{Code: 40100, Message: "Failed to decode image, supported formats: JPEG, PNG"}
	ErrImageMissing      = &Errno{Code: 40101, Message: "Image file is required"}
	ErrFilterUnknown     = &Errno{Code: 40102, Message: "Unknown image filter"}
	ErrImageCompare      = &Errno{Code: 40103, Message: "Failed to compare images"}
	ErrImageEncode       = &Errno{Code: 40104, Message: "Failed to encode image"}

	// share errors
	ErrShareCreate   = &Errno{Code: 50100, Message: "Failed to create share link, please retry"}
	ErrShareNotFound = &Errno{Code: 50101, Message: "Share link not found"}
)
