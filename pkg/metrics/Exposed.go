package metrics

var SessionsTotal = NewCounter("wstail_sessions_total", "Total client sessions accepted", []string{})
var SessionsActive = NewGauge("wstail_sessions_active", "Client sessions currently open", []string{})
var BytesStreamed = NewCounter("wstail_bytes_streamed_total", "Total file bytes forwarded to clients", []string{})
var HeartbeatTimeouts = NewCounter("wstail_heartbeat_timeouts_total", "Sessions closed because the client stopped answering probes", []string{})
var PathsRejected = NewCounter("wstail_paths_rejected_total", "Requested paths rejected by the resolver", []string{"reason"})
var ServerVersion = NewCounter("wstail_version", "wstail version", []string{"version"})
