package consts

import "io/fs"

const APP_NAME = "fileencryptor"
const APP_TITLE = "FileEncryptor"
const APP_VERSION = "0.3.0"

// Prefix of every environment key read by auxiliary.Settings.
const ENV_PREFIX = "FILEENCRYPTOR_"

var LOGS_FILE_NAME = ".fileencryptor.logs.json"
var LOGS_MAX_FILE_SIZE_MB = 15
var LOGS_MAX_TIME int64 = 2419200 // seconds, 28 days

var ENCRYPTED_FILE_MODE fs.FileMode = 0600
var DECRYPTED_FILE_MODE fs.FileMode = 0644
