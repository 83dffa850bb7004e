package ir

// EngineVersion is the numkit engine version, stored with every record.
const EngineVersion = "0.1.0"
