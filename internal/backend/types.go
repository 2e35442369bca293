package backend

// Page is the paginated list envelope the backend returns for every entity.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
}

// Dosen is a lecturer with the RFID card bound to them.
type Dosen struct {
	IDDosen   int    `json:"id_dosen"`
	NamaDosen string `json:"nama_dosen"`
	UIDKartu  string `json:"uid_kartu"`
}

// DosenInput is the create/update payload for a lecturer.
type DosenInput struct {
	NamaDosen string `json:"nama_dosen"`
	UIDKartu  string `json:"uid_kartu"`
}

// MataKuliah is a course.
type MataKuliah struct {
	IDMatkul   int    `json:"id_matkul"`
	KodeMatkul string `json:"kode_matkul"`
	NamaMatkul string `json:"nama_matkul"`
}

// MataKuliahInput is the create/update payload for a course.
type MataKuliahInput struct {
	KodeMatkul string `json:"kode_matkul"`
	NamaMatkul string `json:"nama_matkul"`
}

// Jadwal is one class session as the backend joins it: the schedule row plus
// the overlapping leave and tap facts the status resolver needs.
type Jadwal struct {
	IDJadwal       int    `json:"id_jadwal"`
	IDDosen        int    `json:"id_dosen"`
	IDMatkul       int    `json:"id_matkul"`
	Tanggal        string `json:"tanggal"`
	Hari           string `json:"hari"`
	JamMulai       string `json:"jam_mulai"`
	JamSelesai     string `json:"jam_selesai"`
	NamaDosen      string `json:"nama_dosen"`
	NamaMatkul     string `json:"nama_matkul"`
	StatusIzin     string `json:"status_izin"`
	KeteranganIzin string `json:"keterangan_izin"`
	WaktuMasuk     string `json:"waktu_masuk"`
	WaktuKeluar    string `json:"waktu_keluar"`
}

// JadwalInput is the create/update payload for a schedule entry.
type JadwalInput struct {
	IDDosen    int    `json:"id_dosen"`
	IDMatkul   int    `json:"id_matkul"`
	Tanggal    string `json:"tanggal"`
	JamMulai   string `json:"jam_mulai"`
	JamSelesai string `json:"jam_selesai"`
}

// Izin is a leave record overriding one schedule entry.
type Izin struct {
	IDIzin     int    `json:"id_izin"`
	IDJadwal   int    `json:"id_jadwal"`
	Tanggal    string `json:"tanggal"`
	Jenis      string `json:"jenis"`
	Keterangan string `json:"keterangan"`
}

// IzinInput is the create/update payload for a leave record.
type IzinInput struct {
	IDJadwal   int    `json:"id_jadwal"`
	Tanggal    string `json:"tanggal"`
	Jenis      string `json:"jenis"`
	Keterangan string `json:"keterangan"`
}

// Absensi is an attendance record. The backend creates these from tap events
// and leave submissions; this client only edits or deletes them.
type Absensi struct {
	IDAbsensi       int    `json:"id_absensi"`
	IDJadwal        int    `json:"id_jadwal"`
	UIDKartu        string `json:"uid_kartu"`
	WaktuMasuk      string `json:"waktu_masuk"`
	WaktuKeluar     string `json:"waktu_keluar"`
	StatusKehadiran string `json:"status_kehadiran"`
	Keterangan      string `json:"keterangan"`
	NamaDosen       string `json:"nama_dosen"`
	NamaMatkul      string `json:"nama_matkul"`
}

// AbsensiInput is the update payload for an attendance record.
type AbsensiInput struct {
	IDJadwal        int    `json:"id_jadwal"`
	UIDKartu        string `json:"uid_kartu"`
	WaktuMasuk      string `json:"waktu_masuk"`
	WaktuKeluar     string `json:"waktu_keluar,omitempty"`
	StatusKehadiran string `json:"status_kehadiran"`
	Keterangan      string `json:"keterangan"`
}

// LiveStatus is the backend's current-instant class snapshot. Every status
// event replaces it wholesale; fields are never merged individually.
type LiveStatus struct {
	StatusKelas       string `json:"status_kelas"`
	CountLive         int    `json:"count_live"`
	NamaMatkul        string `json:"nama_matkul"`
	NamaDosen         string `json:"nama_dosen"`
	WaktuMasuk        string `json:"waktu_masuk"`
	WaktuKeluar       string `json:"waktu_keluar"`
	ServerTimestampMS int64  `json:"server_timestamp_ms,omitempty"`
}

// HealthPatch is a partial update of node liveness. Nil fields leave the
// previous value untouched.
type HealthPatch struct {
	Esp32 *string `json:"esp32,omitempty"`
	Raspi *string `json:"raspi,omitempty"`
}

// MetricsPatch is a partial update of the performance counters. Nil fields
// retain the previous value; the server timestamp is envelope metadata and is
// stripped before merging.
type MetricsPatch struct {
	YoloMS            *float64 `json:"yolo_ms,omitempty"`
	RFIDTotalMS       *float64 `json:"rfid_total_ms,omitempty"`
	WSLatencyMS       *float64 `json:"ws_latency_ms,omitempty"`
	ServerTimestampMS *int64   `json:"server_timestamp_ms,omitempty"`
}

// InitialStatus is the combined dashboard bootstrap snapshot.
type InitialStatus struct {
	Health  *HealthPatch  `json:"health"`
	Status  *LiveStatus   `json:"status"`
	Metrics *MetricsPatch `json:"metrics"`
}
