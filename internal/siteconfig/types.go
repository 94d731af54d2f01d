package siteconfig

type Empresa struct {
	Nombre          string `json:"nombre"`
	NombreCorto     string `json:"nombre_corto"`
	Slogan          string `json:"slogan"`
	Logo            string `json:"logo"`
	Favicon         string `json:"favicon"`
	DescripcionMeta string `json:"descripcion_meta"`
}

type Link struct {
	Texto string `json:"texto"`
	Link  string `json:"link"`
}

type Hero struct {
	TituloLinea1  string `json:"titulo_linea1"`
	TituloLinea2  string `json:"titulo_linea2"`
	Subtitulo     string `json:"subtitulo"`
	ImagenFondo   string `json:"imagen_fondo"`
	CTAPrincipal  Link   `json:"cta_principal"`
	CTASecundario Link   `json:"cta_secundario"`
}

type Stat struct {
	Valor string `json:"valor"`
	Label string `json:"label"`
}

type Valor struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}

type QuienesSomos struct {
	TituloSeccion    string   `json:"titulo_seccion"`
	Subtitulo        string   `json:"subtitulo"`
	Parrafos         []string `json:"parrafos"`
	Imagen           string   `json:"imagen"`
	AniosExperiencia string   `json:"años_experiencia"`
	Valores          []Valor  `json:"valores"`
}

type Servicio struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}

type Servicios struct {
	TituloSeccion string     `json:"titulo_seccion"`
	Subtitulo     string     `json:"subtitulo"`
	Descripcion   string     `json:"descripcion"`
	Lista         []Servicio `json:"lista"`
}

type Telefono struct {
	Display string `json:"display"`
	Link    string `json:"link"`
}

type WhatsApp struct {
	Numero         string `json:"numero"`
	MensajeInicial string `json:"mensaje_inicial"`
}

type Horarios struct {
	Semana string `json:"semana"`
	Sabado string `json:"sabado"`
}

type Formulario struct {
	Titulo      string `json:"titulo"`
	AsuntoEmail string `json:"asunto_email"`
	WebhookURL  string `json:"webhook_url"`
	Origen      string `json:"origen"`
}

type Contacto struct {
	TituloSeccion string     `json:"titulo_seccion"`
	Subtitulo     string     `json:"subtitulo"`
	Descripcion   string     `json:"descripcion"`
	Telefono      Telefono   `json:"telefono"`
	WhatsApp      WhatsApp   `json:"whatsapp"`
	Email         string     `json:"email"`
	Direccion     string     `json:"direccion"`
	Horarios      Horarios   `json:"horarios"`
	Formulario    Formulario `json:"formulario"`
}

type RedesSociales struct {
	Instagram    string `json:"instagram,omitempty"`
	Facebook     string `json:"facebook,omitempty"`
	Youtube      string `json:"youtube,omitempty"`
	Twitter      string `json:"twitter,omitempty"`
	WebComercial string `json:"web_comercial,omitempty"`
}

type Footer struct {
	Descripcion     string `json:"descripcion"`
	DesarrolladoPor struct {
		Nombre string `json:"nombre"`
		Link   string `json:"link"`
	} `json:"desarrollado_por"`
}

// WidgetBot configures the chat widget; the backend only passes it through.
type WidgetBot struct {
	Habilitado             bool   `json:"habilitado"`
	APIURL                 string `json:"apiUrl"`
	ContactURL             string `json:"contactUrl"`
	Repo                   string `json:"repo"`
	Nombre                 string `json:"nombre"`
	MensajeBienvenida      string `json:"mensaje_bienvenida"`
	Placeholder            string `json:"placeholder"`
	Posicion               string `json:"posicion"`
	TamanioBoton           string `json:"tamaño_boton"`
	AnchoChat              string `json:"ancho_chat"`
	AltoChat               string `json:"alto_chat"`
	MostrarBadgeInnovacion bool   `json:"mostrar_badge_innovacion"`
	TextoBadge             string `json:"texto_badge"`
	TextoDestacado         string `json:"texto_destacado"`
	SubtextoDestacado      string `json:"subtexto_destacado"`
	DescripcionDestacado   string `json:"descripcion_destacado"`
}

type Colores struct {
	Primario        string `json:"primario"`
	PrimarioOscuro  string `json:"primario_oscuro"`
	PrimarioClaro   string `json:"primario_claro"`
	Secundario      string `json:"secundario"`
	SecundarioClaro string `json:"secundario_claro"`
	GrisOscuro      string `json:"gris_oscuro"`
	Gris            string `json:"gris"`
	GrisClaro       string `json:"gris_claro"`
	FondoGris       string `json:"fondo_gris"`
	FondoGrisLogo   string `json:"fondo_gris_logo"`
	Blanco          string `json:"blanco"`
	OffWhite        string `json:"off_white"`
}

type Fuentes struct {
	Principal   string `json:"principal"`
	Fallback    string `json:"fallback"`
	TamanioBase struct {
		Desktop string `json:"desktop"`
		Tablet  string `json:"tablet"`
		Mobile  string `json:"mobile"`
	} `json:"tamaño_base"`
	GoogleFontsURL string `json:"google_fonts_url"`
}

type Tema struct {
	Colores Colores `json:"colores"`
	Fuentes Fuentes `json:"fuentes"`
}

type SubItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type NavItem struct {
	Label   string    `json:"label"`
	Href    string    `json:"href,omitempty"`
	Submenu []SubItem `json:"submenu,omitempty"`
}

type Navegacion struct {
	Items []NavItem `json:"items"`
}

// SiteConfig is the whole landing configuration document.
type SiteConfig struct {
	Empresa       Empresa       `json:"empresa"`
	Hero          Hero          `json:"hero"`
	Stats         []Stat        `json:"stats"`
	QuienesSomos  QuienesSomos  `json:"quienes_somos"`
	Servicios     Servicios     `json:"servicios"`
	Contacto      Contacto      `json:"contacto"`
	RedesSociales RedesSociales `json:"redes_sociales"`
	Footer        Footer        `json:"footer"`
	WidgetBot     WidgetBot     `json:"widget_bot"`
	Tema          Tema          `json:"tema"`
	Navegacion    Navegacion    `json:"navegacion"`
}
